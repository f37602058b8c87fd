package options

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/kestrelaudio/screenvoice/internal/logging/events"
)

// maxLegacyDistance bounds how far a localized label may drift from a known
// closing word before the legacy heuristic refuses to pick it.
const maxLegacyDistance = 2

// SelectByTag returns the index of the first option whose action tag matches
// one of the requested tags, trying tags in the order given. When no tagged
// match exists it falls back to the legacy localized-label heuristic, and
// finally to the last non-informational activatable option. Returns -1 only
// when the sequence holds no activatable option at all.
func (s *Sequence) SelectByTag(tags ...string) int {
	for _, tag := range tags {
		for i, opt := range s.opts {
			if opt.Tag != "" && strings.EqualFold(opt.Tag, tag) {
				return i
			}
		}
	}
	if i := s.legacyLabelMatch(tags); i >= 0 {
		return i
	}
	for i := len(s.opts) - 1; i >= 0; i-- {
		if s.opts[i].Activatable && !s.opts[i].Informational {
			return i
		}
	}
	return -1
}

// legacyLabelMatch is the pre-tag close-button detection: substring match on
// the localized label, then nearest label by edit distance. It exists only
// for hosts that have not tagged their buttons yet and is traced whenever it
// fires.
func (s *Sequence) legacyLabelMatch(tags []string) int {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for i, opt := range s.opts {
			if !opt.Activatable || opt.Informational {
				continue
			}
			if strings.Contains(strings.ToLower(opt.Label), lower) {
				events.Nav.LegacyLabelFallback(s.screen, opt.Label, 0)
				return i
			}
		}
	}
	best, bestDist := -1, maxLegacyDistance+1
	for _, tag := range tags {
		for i, opt := range s.opts {
			if !opt.Activatable || opt.Informational {
				continue
			}
			d := levenshtein.ComputeDistance(strings.ToLower(opt.Label), strings.ToLower(tag))
			if d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best >= 0 {
		events.Nav.LegacyLabelFallback(s.screen, s.opts[best].Label, bestDist)
	}
	return best
}

// BestMatchIndex returns the option best matching a typed query: exact label
// match, then label prefix, then fuzzy rank. -1 when the sequence is empty or
// nothing ranks.
func (s *Sequence) BestMatchIndex(query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(s.opts) == 0 {
		return -1
	}
	for i, opt := range s.opts {
		if strings.EqualFold(opt.Label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, opt := range s.opts {
		if strings.HasPrefix(strings.ToLower(opt.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(s.opts))
	for i, opt := range s.opts {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
