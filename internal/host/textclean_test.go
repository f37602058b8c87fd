package host

import "testing"

func TestCleanTextStripsMarkupAndEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"Cargo delivered to <b>Meridian Station</b>.", "Cargo delivered to Meridian Station ."},
		{"a<br>b", "a b"},
		{"\x1b[31mdanger\x1b[0m ahead", "danger ahead"},
		{"  spaced \t out  ", "spaced out"},
		{"<hint>", ""},
		{"broken <tag runs off", "broken"},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Fatalf("CleanText(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestCleanTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"Cargo delivered to <b>Meridian Station</b>.",
		"\x1b[1mEscort convoy\x1b[0m to <i>Vela</i>",
		"  already   clean  ",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Fatalf("CleanText not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestInputSlotSingleRequest(t *testing.T) {
	var slot InputSlot
	err := slot.Request("Ship name", func(value *string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error on first request: %v", err)
	}
	if !slot.Pending() {
		t.Fatalf("expected slot to be pending")
	}
	if slot.Prompt() != "Ship name" {
		t.Fatalf("expected prompt %q, got %q", "Ship name", slot.Prompt())
	}
	err = slot.Request("Armor layers", func(value *string) string { return "" })
	if err != ErrInputPending {
		t.Fatalf("expected ErrInputPending on second request, got %v", err)
	}
}

func TestInputSlotResolveClearsBeforeContinuation(t *testing.T) {
	var slot InputSlot
	if err := slot.Request("Ship name", func(value *string) string {
		if slot.Pending() {
			t.Fatalf("expected slot cleared before continuation runs")
		}
		if value == nil {
			return "cancelled"
		}
		return "named " + *value
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value := "Kestrel"
	if got := slot.Resolve(&value); got != "named Kestrel" {
		t.Fatalf("expected continuation announcement, got %q", got)
	}
	if slot.Pending() {
		t.Fatalf("expected slot idle after resolve")
	}
}

func TestInputSlotCancelPending(t *testing.T) {
	var slot InputSlot
	if err := slot.Request("Armor layers", func(value *string) string {
		if value != nil {
			t.Fatalf("expected nil value on cancel, got %q", *value)
		}
		return "kept existing armor"
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := slot.CancelPending(); got != "kept existing armor" {
		t.Fatalf("expected cancel announcement, got %q", got)
	}
	if got := slot.CancelPending(); got != "" {
		t.Fatalf("expected empty announcement on idle cancel, got %q", got)
	}
}
