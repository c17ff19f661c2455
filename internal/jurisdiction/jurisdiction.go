// Package jurisdiction translates user-facing jurisdiction codes into
// CourtListener court_id filter clauses.
package jurisdiction

import "strings"

// FilterClause builds the court filter fragment for a jurisdiction code.
// Known codes with one court yield "court_id:<id>"; codes with several yield
// a parenthesized OR over all of them in table order. Unknown codes are
// forwarded verbatim (lowercased) as a best-effort filter rather than an
// error.
func FilterClause(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	courts, ok := courtTable[code]
	if !ok || len(courts) == 0 {
		return "court_id:" + code
	}
	if len(courts) == 1 {
		return "court_id:" + courts[0]
	}

	terms := make([]string, len(courts))
	for i, id := range courts {
		terms[i] = "court_id:" + id
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}
