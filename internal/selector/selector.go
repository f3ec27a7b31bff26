// Package selector chooses which fortunes to show: either every record
// matching a pattern, or a single record picked at random.
package selector

import (
	"regexp"

	"github.com/harrison/fortune/internal/models"
)

// Filter returns the fortunes whose text matches pattern, preserving
// the input order. Case sensitivity is baked into the compiled pattern.
// Matching is an unanchored search anywhere in the (possibly
// multi-line) text.
func Filter(fortunes []models.Fortune, pattern *regexp.Regexp) []models.Fortune {
	var matches []models.Fortune
	for _, f := range fortunes {
		if pattern.MatchString(f.Text) {
			matches = append(matches, f)
		}
	}
	return matches
}

// Pick selects one fortune uniformly at random using src. With N
// fortunes each has probability 1/N. ok is false when there is nothing
// to pick from; callers render a fallback message instead of failing.
func Pick(fortunes []models.Fortune, src Source) (fortune models.Fortune, ok bool) {
	if len(fortunes) == 0 {
		return models.Fortune{}, false
	}
	return fortunes[src.Intn(len(fortunes))], true
}
