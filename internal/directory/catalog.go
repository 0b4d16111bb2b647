// Package directory holds the read-only lawyer catalog that backs the
// directory filter.
package directory

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/lawra/internal/domain"
)

const maxRating = 5.0

//go:embed seed.yaml
var embeddedSeed []byte

// Config selects the catalog seed. An empty SeedPath uses the embedded seed.
type Config struct {
	SeedPath string `env:"DIRECTORY_SEED_PATH"`
}

type seedFile struct {
	Lawyers []domain.ProviderRecord `yaml:"lawyers"`
}

// Catalog implements domain.ProviderCatalog over an immutable record list.
type Catalog struct {
	records []domain.ProviderRecord
	byID    map[string]int
}

// Load builds the catalog from cfg.SeedPath, or the embedded seed.
func Load(cfg *Config) (*Catalog, error) {
	data := embeddedSeed

	if cfg != nil && cfg.SeedPath != "" {
		fileData, err := os.ReadFile(cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = fileData
	}

	return Parse(data)
}

// Parse builds a catalog from YAML seed data.
func Parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	return NewCatalog(seed.Lawyers)
}

// NewCatalog validates records and builds a catalog holding a copy of them.
func NewCatalog(records []domain.ProviderRecord) (*Catalog, error) {
	c := &Catalog{
		records: slices.Clone(records),
		byID:    make(map[string]int, len(records)),
	}

	for i, record := range c.records {
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("invalid lawyer at index %d: %w", i, err)
		}

		if _, exists := c.byID[record.ID]; exists {
			return nil, fmt.Errorf("lawyer %s already registered", record.ID)
		}

		c.byID[record.ID] = i
	}

	return c, nil
}

// List returns all lawyers in seed order.
func (c *Catalog) List(_ context.Context) ([]domain.ProviderRecord, error) {
	return slices.Clone(c.records), nil
}

// Get retrieves a lawyer by ID.
func (c *Catalog) Get(_ context.Context, id string) (domain.ProviderRecord, error) {
	if id == "" {
		return domain.ProviderRecord{}, errors.New("lawyer id cannot be empty")
	}

	i, exists := c.byID[id]
	if !exists {
		return domain.ProviderRecord{}, fmt.Errorf("%w: %s", domain.ErrLawyerNotFound, id)
	}

	return c.records[i], nil
}

// Specialties returns distinct specialty tags in first-seen order.
func (c *Catalog) Specialties(_ context.Context) ([]string, error) {
	seen := make(map[string]bool, len(c.records))
	specialties := make([]string, 0, len(c.records))

	for _, record := range c.records {
		if seen[record.SpecialtyTag] {
			continue
		}
		seen[record.SpecialtyTag] = true
		specialties = append(specialties, record.SpecialtyTag)
	}

	return specialties, nil
}

func validateRecord(record domain.ProviderRecord) error {
	switch {
	case record.ID == "":
		return errors.New("id cannot be empty")
	case record.DisplayName == "":
		return errors.New("display_name cannot be empty")
	case record.YearsExperience < 0:
		return errors.New("years_experience cannot be negative")
	case record.Rating < 0 || record.Rating > maxRating:
		return fmt.Errorf("rating %.1f is outside 0-5", record.Rating)
	case record.HourlyRate < 0:
		return errors.New("hourly_rate cannot be negative")
	}
	return nil
}
