package extract

import "strings"

// FilterAll is the party filter value that disables filtering.
const FilterAll = "all"

// aliasTable expands user-facing party keywords into the litigation-role
// terms they should match. Unlisted filters fall back to a literal
// one-term set.
var aliasTable = map[string][]string{
	"tenant":    {"appellant", "plaintiff", "petitioner", "tenant"},
	"landlord":  {"appellee", "respondent", "defendant", "landlord"},
	"appellant": {"appellant", "plaintiff", "petitioner"},
	"appellee":  {"appellee", "respondent", "defendant"},
}

// Filter is an alias-expanded party filter. The zero value behaves like
// FilterAll.
type Filter struct {
	raw     string
	aliases []string
}

// NewFilter builds a Filter from the user-facing party keyword. "all" (or
// empty) matches everything; known keywords expand via the alias table;
// anything else is treated as a literal single-term alias set.
func NewFilter(raw string) Filter {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		raw = FilterAll
	}
	f := Filter{raw: raw}
	if raw == FilterAll {
		return f
	}
	if aliases, ok := aliasTable[raw]; ok {
		f.aliases = aliases
		return f
	}
	f.aliases = []string{raw}
	return f
}

// Raw returns the normalized filter keyword as requested by the caller.
func (f Filter) Raw() string {
	if f.raw == "" {
		return FilterAll
	}
	return f.raw
}

// IsAll reports whether the filter matches every party.
func (f Filter) IsAll() bool {
	return f.raw == "" || f.raw == FilterAll
}

// Matches reports whether the given party or role text contains at least one
// alias term. Comparison is case-insensitive substring containment.
func (f Filter) Matches(text string) bool {
	if f.IsAll() {
		return true
	}
	text = strings.ToLower(text)
	for _, alias := range f.aliases {
		if strings.Contains(text, alias) {
			return true
		}
	}
	return false
}
