// Package announce renders navigation state into speakable text. Every
// function is pure: same state in, same sentence out.
package announce

import (
	"fmt"
	"sort"
	"strings"
)

// ListCap bounds how many items ListAll reads before summarizing the rest.
const ListCap = 10

// Entry is spoken once when a screen becomes active.
func Entry(title string, count int, first string) string {
	if count == 0 {
		return fmt.Sprintf("%s. No options.", title)
	}
	noun := "options"
	if count == 1 {
		noun = "option"
	}
	return fmt.Sprintf("%s. %d %s. %s", title, count, noun, first)
}

// Step is spoken on every cursor move: position, label, and the secondary
// metric when the flow carries one. index is zero-based.
func Step(index, count int, label, metric string) string {
	if count == 0 || index < 0 {
		return "No options."
	}
	if metric != "" {
		return fmt.Sprintf("%d of %d: %s, %s", index+1, count, label, metric)
	}
	return fmt.Sprintf("%d of %d: %s", index+1, count, label)
}

// Detail is the verbose reading of the current option.
func Detail(label, detail string) string {
	if strings.TrimSpace(detail) == "" {
		return fmt.Sprintf("%s. No details.", label)
	}
	return fmt.Sprintf("%s. %s", label, detail)
}

// ListAll enumerates a collection, reading at most ListCap items. Past the
// cap only the first ListCap items are read and the exact remainder is
// stated; at or under the cap no overflow note is produced.
func ListAll(title string, labels []string) string {
	if len(labels) == 0 {
		return fmt.Sprintf("%s. Nothing to list.", title)
	}
	noun := "items"
	if len(labels) == 1 {
		noun = "item"
	}
	shown := labels
	var overflow string
	if len(labels) > ListCap {
		shown = labels[:ListCap]
		overflow = fmt.Sprintf(", and %d more", len(labels)-ListCap)
	}
	return fmt.Sprintf("%s. %d %s: %s%s", title, len(labels), noun, strings.Join(shown, ", "), overflow)
}

// Percent renders a 0..1 metric as a speakable percentage.
func Percent(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return fmt.Sprintf("%d percent", int(p*100+0.5))
}

// Ranked is a target ordered by a success or agreement metric.
type Ranked struct {
	Ref    string
	Name   string
	Metric float64
}

// SortRanked orders targets for presentation: metric descending, ties broken
// by name ascending. Stable, so repeated builds of identical input produce
// identical order.
func SortRanked(items []Ranked) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Metric != items[j].Metric {
			return items[i].Metric > items[j].Metric
		}
		return items[i].Name < items[j].Name
	})
}
