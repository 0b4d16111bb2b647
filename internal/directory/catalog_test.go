package directory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/directory"
	"github.com/davidbz/lawra/internal/domain"
)

func TestLoad_EmbeddedSeed(t *testing.T) {
	catalog, err := directory.Load(&directory.Config{})
	require.NoError(t, err)

	records, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 6)

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	require.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)

	require.Equal(t, "ทนายสมชาย วงษ์ใหญ่", records[0].DisplayName)
	require.InDelta(t, 2500.0, records[0].HourlyRate, 0.001)
	require.False(t, records[5].Verified)
}

func TestLoad_SeedPath(t *testing.T) {
	t.Run("should load seed from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		data := []byte(`lawyers:
  - id: "a"
    display_name: "Alice"
    specialty: "Tax"
    years_experience: 3
    rating: 4.0
    hourly_rate: 1500
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		catalog, err := directory.Load(&directory.Config{SeedPath: path})
		require.NoError(t, err)

		record, err := catalog.Get(context.Background(), "a")
		require.NoError(t, err)
		require.Equal(t, "Alice", record.DisplayName)
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		catalog, err := directory.Load(&directory.Config{SeedPath: filepath.Join(t.TempDir(), "missing.yaml")})

		require.Error(t, err)
		require.Nil(t, catalog)
	})
}

func TestNewCatalog_Validation(t *testing.T) {
	valid := domain.ProviderRecord{ID: "1", DisplayName: "A", Rating: 4, HourlyRate: 1000}

	tests := []struct {
		name    string
		records []domain.ProviderRecord
		errMsg  string
	}{
		{
			name:    "duplicate id",
			records: []domain.ProviderRecord{valid, valid},
			errMsg:  "already registered",
		},
		{
			name:    "empty id",
			records: []domain.ProviderRecord{{DisplayName: "A"}},
			errMsg:  "id cannot be empty",
		},
		{
			name:    "rating above five",
			records: []domain.ProviderRecord{{ID: "1", DisplayName: "A", Rating: 5.5}},
			errMsg:  "outside 0-5",
		},
		{
			name:    "negative rate",
			records: []domain.ProviderRecord{{ID: "1", DisplayName: "A", HourlyRate: -1}},
			errMsg:  "hourly_rate cannot be negative",
		},
		{
			name:    "negative experience",
			records: []domain.ProviderRecord{{ID: "1", DisplayName: "A", YearsExperience: -2}},
			errMsg:  "years_experience cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := directory.NewCatalog(tt.records)

			require.Error(t, err)
			require.Nil(t, catalog)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := directory.Load(nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("should return lawyer by id", func(t *testing.T) {
		record, getErr := catalog.Get(ctx, "3")

		require.NoError(t, getErr)
		require.Equal(t, "กฎหมายอาญา", record.SpecialtyTag)
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		_, getErr := catalog.Get(ctx, "99")

		require.ErrorIs(t, getErr, domain.ErrLawyerNotFound)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, getErr := catalog.Get(ctx, "")

		require.Error(t, getErr)
	})
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	catalog, err := directory.Load(nil)
	require.NoError(t, err)
	ctx := context.Background()

	records, err := catalog.List(ctx)
	require.NoError(t, err)
	records[0].DisplayName = "changed"

	again, err := catalog.List(ctx)
	require.NoError(t, err)
	require.NotEqual(t, "changed", again[0].DisplayName)
}

func TestCatalog_Specialties(t *testing.T) {
	records := []domain.ProviderRecord{
		{ID: "1", DisplayName: "A", SpecialtyTag: "Tax"},
		{ID: "2", DisplayName: "B", SpecialtyTag: "Family"},
		{ID: "3", DisplayName: "C", SpecialtyTag: "Tax"},
	}
	catalog, err := directory.NewCatalog(records)
	require.NoError(t, err)

	specialties, err := catalog.Specialties(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"Tax", "Family"}, specialties)
}
