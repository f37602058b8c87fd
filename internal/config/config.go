package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration for the demo application.
type Config struct {
	App     App
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// App describes user-provided application options.
type App struct {
	StartScreen     string
	PollInterval    time.Duration
	TranscriptLines int
	Verbose         bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStartScreen = "SCREENVOICE_SCREEN"
	envPollMillis  = "SCREENVOICE_POLL_MS"
	envTranscript  = "SCREENVOICE_TRANSCRIPT_LINES"
	envVerbose     = "SCREENVOICE_VERBOSE"
	envTrace       = "SCREENVOICE_TRACE"
	envLogFile     = "SCREENVOICE_LOG_FILE"
)

var startScreens = []string{"popup", "mission", "refit", "contacts"}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("screenvoice", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	screen := fs.String("screen", envOrDefault(env, envStartScreen, "popup"), "initial demo screen (popup, mission, refit, contacts)")
	poll := fs.Int("poll", envOrInt(env, envPollMillis, 150), "screen watcher poll interval in milliseconds")
	transcript := fs.Int("transcript", envOrInt(env, envTranscript, 8), "spoken transcript lines shown in the demo view")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show command echoes alongside the transcript")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable structured trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *poll <= 0 {
		return Config{}, fmt.Errorf("poll interval must be > 0 (got %d)", *poll)
	}
	if *transcript < 1 {
		return Config{}, fmt.Errorf("transcript lines must be >= 1 (got %d)", *transcript)
	}
	valid := false
	for _, s := range startScreens {
		if s == *screen {
			valid = true
			break
		}
	}
	if !valid {
		return Config{}, fmt.Errorf("unknown screen %q (want one of %s)", *screen, strings.Join(startScreens, ", "))
	}

	cfg := Config{
		App: App{
			StartScreen:     *screen,
			PollInterval:    time.Duration(*poll) * time.Millisecond,
			TranscriptLines: *transcript,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"screen":     *screen,
			"poll":       strconv.Itoa(*poll),
			"transcript": strconv.Itoa(*transcript),
			"verbose":    strconv.FormatBool(*verbose),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
