// Package extract pulls attorney attributions out of normalized opinion
// text with a fixed battery of patterns. Matches that fail the name-length,
// reject-list, or party-filter checks are silently dropped; callers only
// ever see accepted records.
package extract

import (
	"regexp"
	"strings"

	"legalnav-api/internal/domain"
)

const minNameLength = 3

var whitespaceRun = regexp.MustCompile(`\s+`)

// Attorneys scans the whole text with every pattern in order and returns one
// record per case-insensitive attorney name, first occurrence winning. All
// records carry source opinion_text.
func Attorneys(text string, filter Filter) []domain.AttorneyRecord {
	if text == "" {
		return nil
	}

	var out []domain.AttorneyRecord
	seen := make(map[string]struct{})

	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			name := CleanName(m[r.nameIdx])
			party := CleanName(m[r.partyIdx])

			if len(name) < minNameLength {
				continue
			}
			if rejected(name) {
				continue
			}
			if !filter.Matches(party) {
				continue
			}

			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			out = append(out, domain.AttorneyRecord{
				Name:             name,
				Role:             "For " + party,
				PartyRepresented: party,
				Source:           domain.SourceOpinionText,
			})
		}
	}

	return out
}

// CleanName collapses whitespace runs and strips surrounding space plus
// trailing commas and periods from a captured name or party string, so
// "Jane Q. Smith." keys the same as "Jane Q. Smith".
func CleanName(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	for strings.HasSuffix(s, ",") || strings.HasSuffix(s, ".") {
		s = strings.TrimSuffix(strings.TrimSuffix(s, ","), ".")
		s = strings.TrimSpace(s)
	}
	return s
}

func rejected(name string) bool {
	lower := strings.ToLower(name)
	for _, phrase := range rejectList {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
