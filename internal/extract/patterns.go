package extract

import "regexp"

// partyKeywords is the closed set of litigation-role words a pattern may
// capture as the represented party. Keyword matching is case-insensitive;
// name matching is not.
const partyKeywords = `(?i:Appellants?|Appellees?|Respondents?|Plaintiffs?|Defendants?|Petitioners?|Real\s+Part(?:y|ies)\s+in\s+Interest)`

// nameWord is one capitalized name token: a word or an initial like "Q.".
// Periods are only allowed on initials so a capture stops at the sentence
// boundary instead of running into the following clause.
const nameWord = `(?:[A-Z]\.|[A-Z][A-Za-z'-]+)`

// rule pairs a compiled pattern with the capture-group layout for the
// attorney name and the party text. Adding a pattern is a data change; the
// extractor processes the list uniformly in order.
type rule struct {
	name     string
	re       *regexp.Regexp
	nameIdx  int
	partyIdx int
}

// rules is the fixed battery tuned for appellate-opinion attorney-listing
// conventions. Order matters: on duplicate names the earlier pattern's
// record wins.
var rules = []rule{
	{
		// "Jane Q. Smith, for Appellant"
		name:     "bare_name",
		re:       regexp.MustCompile(`(` + nameWord + `(?:\s+` + nameWord + `){1,3}),\s+(?i:for)\s+(?i:the\s+)?(` + partyKeywords + `[^.;:\n]*)`),
		nameIdx:  1,
		partyIdx: 2,
	},
	{
		// "Law Offices of John Doe, for Respondent"
		name:     "law_offices",
		re:       regexp.MustCompile(`((?i:Law\s+Offices?\s+of)\s+` + nameWord + `(?:\s+(?:&|` + nameWord + `)){0,5}),\s+(?i:for)\s+(?i:the\s+)?(` + partyKeywords + `[^.;:\n]*)`),
		nameIdx:  1,
		partyIdx: 2,
	},
	{
		// "Smith & Jones, LLP, for Defendant"
		name:     "firm_style",
		re:       regexp.MustCompile(`(` + nameWord + `(?:\s+(?:&|` + nameWord + `)){0,4},?\s+(?i:LLP|LLC|P\.?C\.?)),\s+(?i:for)\s+(?i:the\s+)?(` + partyKeywords + `[^.;:\n]*)`),
		nameIdx:  1,
		partyIdx: 2,
	},
	{
		// "Rob Bonta, Attorney General, for Plaintiff"
		name:     "attorney_general",
		re:       regexp.MustCompile(`(` + nameWord + `(?:\s+` + nameWord + `){0,3},?\s+(?i:(?:Acting\s+|Deputy\s+|Assistant\s+)*Attorneys?\s+General)[\w\s.,'-]{0,60}?),\s+(?i:for)\s+(?i:the\s+)?(` + partyKeywords + `[^.;:\n]*)`),
		nameIdx:  1,
		partyIdx: 2,
	},
	{
		// "Counsel for Appellant: Jane Q. Smith" (reversed order)
		name:     "counsel_for",
		re:       regexp.MustCompile(`(?i:Counsel\s+for)\s+(?i:the\s+)?(` + partyKeywords + `)\s*[:,]\s*(` + nameWord + `(?:\s+` + nameWord + `){0,4})`),
		nameIdx:  2,
		partyIdx: 1,
	},
}

// rejectList marks captured "names" that are really institutional phrases,
// a common false positive of the reversed counsel_for form.
var rejectList = []string{
	"the court",
	"this court",
	"trial court",
	"superior court",
	"we conclude",
	"we hold",
	"we reverse",
	"we affirm",
}
