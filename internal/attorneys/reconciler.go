// Package attorneys merges attorney candidates from the three extraction
// sources and aggregates them across cases.
package attorneys

import (
	"context"
	"log/slog"

	"legalnav-api/internal/domain"
	"legalnav-api/internal/extract"
	"legalnav-api/internal/logging"
	"legalnav-api/internal/providers"
)

// Text extraction only runs when cheaper sources produced fewer records
// than this. It trades completeness for cost; duplicate sightings across
// sources are evidence, not conflict, so nothing is overridden.
const textExtractionThreshold = 2

// TextSource yields normalized opinion text for a cluster, or empty when
// unavailable.
type TextSource interface {
	Text(ctx context.Context, clusterID string) string
}

// Reconciler assembles each case's attorney list from the inline
// search-result field, the docket parties lookup, and opinion-text
// extraction.
type Reconciler struct {
	docket providers.DocketSource
	texts  TextSource
	logger *slog.Logger
}

// NewReconciler constructs a Reconciler. Either source may be nil; a nil
// source simply contributes nothing.
func NewReconciler(docket providers.DocketSource, texts TextSource, logger *slog.Logger) *Reconciler {
	return &Reconciler{docket: docket, texts: texts, logger: logger}
}

// CaseAttorneys runs the per-case pipeline: inline record first, then all
// docket records, then text extraction as the expensive fallback, then the
// party-role filter. Enrichment failures are isolated to their source; they
// never surface as errors.
func (r *Reconciler) CaseAttorneys(ctx context.Context, hit providers.SearchHit, filter extract.Filter) []domain.AttorneyRecord {
	var records []domain.AttorneyRecord

	if hit.InlineAttorney != "" {
		records = append(records, domain.AttorneyRecord{
			Name:   extract.CleanName(hit.InlineAttorney),
			Role:   "From case record",
			Source: domain.SourceSearchResult,
		})
	}

	records = append(records, r.docketRecords(ctx, hit.Case.DocketID)...)

	if len(records) < textExtractionThreshold {
		records = append(records, r.textRecords(ctx, hit.Case.ClusterID, filter)...)
	}

	return filterRecords(records, filter)
}

func (r *Reconciler) docketRecords(ctx context.Context, docketID string) []domain.AttorneyRecord {
	if r.docket == nil || docketID == "" {
		return nil
	}
	records, err := r.docket.FetchParties(ctx, docketID)
	if err != nil {
		// Best effort: the parties endpoint mostly works for federally
		// docketed cases.
		logging.Debug(r.logger, "docket lookup failed", "docket_id", docketID, "error", err)
		return nil
	}
	return records
}

func (r *Reconciler) textRecords(ctx context.Context, clusterID string, filter extract.Filter) []domain.AttorneyRecord {
	if r.texts == nil || clusterID == "" {
		return nil
	}
	text := r.texts.Text(ctx, clusterID)
	if text == "" {
		return nil
	}
	return extract.Attorneys(text, filter)
}

// filterRecords applies the party-role filter. Inline search-result records
// are always retained as a weak positive signal worth surfacing either way.
func filterRecords(records []domain.AttorneyRecord, filter extract.Filter) []domain.AttorneyRecord {
	if filter.IsAll() {
		return records
	}
	kept := records[:0:0]
	for _, rec := range records {
		if rec.Source == domain.SourceSearchResult {
			kept = append(kept, rec)
			continue
		}
		if filter.Matches(rec.PartyRepresented) || filter.Matches(rec.Role) {
			kept = append(kept, rec)
		}
	}
	return kept
}
