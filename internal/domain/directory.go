package domain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/davidbz/lawra/internal/observability"
)

// SpecialtyAll is the specialty sentinel that matches every record.
const SpecialtyAll = "all"

// FilterProviders returns the records matching all three criteria, in their
// original order. The input slice is not modified.
func FilterProviders(records []ProviderRecord, criteria FilterCriteria) []ProviderRecord {
	matcher := newTextMatcher(criteria.SearchText)

	filtered := make([]ProviderRecord, 0, len(records))
	for _, record := range records {
		if !matcher.matches(record.DisplayName, record.SpecialtyTag) {
			continue
		}
		if !matchesSpecialty(record, criteria.SpecialtyTag) {
			continue
		}
		if !criteria.PriceBand.Contains(record.HourlyRate) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

func matchesSpecialty(record ProviderRecord, specialty string) bool {
	if specialty == "" || specialty == SpecialtyAll {
		return true
	}
	return record.SpecialtyTag == specialty
}

// textMatcher does case-insensitive substring matching on NFC-normalized,
// case-folded text. A Caser is stateful, so each matcher owns one.
type textMatcher struct {
	folder cases.Caser
	needle string
}

func newTextMatcher(search string) *textMatcher {
	m := &textMatcher{folder: cases.Fold()}
	m.needle = m.fold(search)
	return m
}

func (m *textMatcher) fold(s string) string {
	return m.folder.String(norm.NFC.String(s))
}

func (m *textMatcher) matches(fields ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(m.fold(field), m.needle) {
			return true
		}
	}
	return false
}

// DirectoryFacets lists the filter options available to clients.
type DirectoryFacets struct {
	Specialties []string        `json:"specialties"`
	PriceBands  []PriceBandInfo `json:"price_bands"`
}

// DirectoryService answers lawyer directory queries.
type DirectoryService struct {
	catalog ProviderCatalog
}

// NewDirectoryService creates a new directory service (DI constructor).
func NewDirectoryService(catalog ProviderCatalog) *DirectoryService {
	return &DirectoryService{
		catalog: catalog,
	}
}

// Search returns the lawyers matching criteria.
func (d *DirectoryService) Search(ctx context.Context, criteria FilterCriteria) ([]ProviderRecord, error) {
	records, err := d.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lawyers: %w", err)
	}

	result := FilterProviders(records, criteria)

	observability.FromContext(ctx).Debug("directory search",
		observability.String("search_text", criteria.SearchText),
		observability.String("specialty", criteria.SpecialtyTag),
		observability.String("price_band", string(criteria.PriceBand)),
		observability.Int("matches", len(result)),
	)

	return result, nil
}

// Get returns one lawyer by ID.
func (d *DirectoryService) Get(ctx context.Context, id string) (ProviderRecord, error) {
	record, err := d.catalog.Get(ctx, id)
	if err != nil {
		return ProviderRecord{}, fmt.Errorf("failed to get lawyer %q: %w", id, err)
	}
	return record, nil
}

// Facets returns the specialties and price bands clients can filter by.
func (d *DirectoryService) Facets(ctx context.Context) (*DirectoryFacets, error) {
	specialties, err := d.catalog.Specialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	return &DirectoryFacets{
		Specialties: append([]string{SpecialtyAll}, specialties...),
		PriceBands:  PriceBands(),
	}, nil
}
