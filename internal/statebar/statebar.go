// Package statebar holds the static state-bar verification tables and the
// verification URL builder. The tables are read-only configuration; no
// network calls happen here.
package statebar

import "strings"

// Lookup returns the bar info for a two-letter state code. Unknown codes get
// the American Bar Association fallback entry with the code folded into the
// bar name.
func Lookup(state string) Info {
	state = normalize(state)
	if info, ok := barTable[state]; ok {
		return info
	}
	info := fallback
	info.Name = state + " " + fallback.Name
	return info
}

// Known reports whether the state code is present in the table.
func Known(state string) bool {
	_, ok := barTable[normalize(state)]
	return ok
}

// VerificationURL builds the URL a caller should visit to verify a bar
// number. California supports direct licensee detail links, so the bar
// number is appended there; every other state gets its base URL unmodified.
func VerificationURL(state, barNumber string) string {
	state = normalize(state)
	if state == "CA" && barNumber != "" {
		return barTable["CA"].URL + barNumber
	}
	if info, ok := barTable[state]; ok {
		return info.URL
	}
	return fallback.URL
}

// States returns the full table keyed by state code. The returned map is a
// copy; callers may not mutate the table.
func States() map[string]Info {
	out := make(map[string]Info, len(barTable))
	for code, info := range barTable {
		out[code] = info
	}
	return out
}

func normalize(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
