package attorneys

import (
	"sort"

	"legalnav-api/internal/domain"
)

// Aggregator folds per-case attorney lists into one ranked set keyed by
// normalized name. Call Add once per case, then Ranked.
type Aggregator struct {
	order   []string
	entries map[string]*aggEntry
}

type aggEntry struct {
	name      string
	caseCount int
	role      string
	firms     []string
	firmSet   map[string]struct{}
	sources   []string
	sourceSet map[string]struct{}
}

func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]*aggEntry)}
}

// Add merges one case's records. A name seen several times within the same
// case counts that case once, but every sighting still contributes its firm
// and source.
func (a *Aggregator) Add(records []domain.AttorneyRecord) {
	counted := make(map[string]struct{})
	for _, rec := range records {
		key := rec.NormalizedName()
		if key == "" {
			continue
		}
		entry, ok := a.entries[key]
		if !ok {
			entry = &aggEntry{
				name:      rec.Name,
				role:      rec.Role,
				firmSet:   make(map[string]struct{}),
				sourceSet: make(map[string]struct{}),
			}
			a.entries[key] = entry
			a.order = append(a.order, key)
		}
		if _, seen := counted[key]; !seen {
			counted[key] = struct{}{}
			entry.caseCount++
		}
		if rec.Firm != "" {
			if _, dup := entry.firmSet[rec.Firm]; !dup {
				entry.firmSet[rec.Firm] = struct{}{}
				entry.firms = append(entry.firms, rec.Firm)
			}
		}
		source := string(rec.Source)
		if _, dup := entry.sourceSet[source]; !dup {
			entry.sourceSet[source] = struct{}{}
			entry.sources = append(entry.sources, source)
		}
	}
}

// Len reports how many distinct attorneys have been collected.
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Ranked returns the aggregate sorted by case count descending. Ties keep
// discovery order, so attorneys from earlier (higher relevance) cases rank
// first.
func (a *Aggregator) Ranked() []domain.UniqueAttorney {
	out := make([]domain.UniqueAttorney, 0, len(a.order))
	for _, key := range a.order {
		entry := a.entries[key]
		out = append(out, domain.UniqueAttorney{
			Name:        entry.name,
			CaseCount:   entry.caseCount,
			TypicalRole: entry.role,
			Firms:       entry.firms,
			DataSources: entry.sources,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CaseCount > out[j].CaseCount
	})
	return out
}
