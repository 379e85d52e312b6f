package dtagen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dta-tools/dtagen/domain/model"
)

// buildCase materializes one suite case with the documented seed
func buildCase(t *testing.T, name string) *model.Dataset {
	t.Helper()

	for _, c := range Suite() {
		if c.Name == name {
			ds, err := c.Build(rand.New(rand.NewPCG(DefaultSeed, DefaultSeed)))
			require.NoError(t, err)
			return ds
		}
	}
	t.Fatalf("no case named %s", name)
	return nil
}

func TestSuite(t *testing.T) {
	t.Parallel()

	t.Run("Case names are unique", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for _, c := range Suite() {
			assert.False(t, seen[c.Name], "duplicate case %s", c.Name)
			seen[c.Name] = true
		}
	})

	t.Run("Required coverage is present", func(t *testing.T) {
		t.Parallel()

		names := make([]string, 0)
		for _, c := range Suite() {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{
			"simple", "mixed_types", "with_missing", "large_dataset",
			"version", "empty", "string_lengths", "special_chars",
		}, names)
	})

	t.Run("Every case builds a valid dataset", func(t *testing.T) {
		t.Parallel()

		for _, c := range Suite() {
			ds, err := c.Build(rand.New(rand.NewPCG(DefaultSeed, DefaultSeed)))
			require.NoError(t, err, "case %s", c.Name)
			require.NotNil(t, ds, "case %s", c.Name)
		}
	})
}

func TestSuite_Simple(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "simple")
	assert.Equal(t, 3, ds.NumColumns())
	assert.Equal(t, 5, ds.NumRows())

	row := ds.Rows()[4]
	assert.Equal(t, int64(5), row[0].Int())
	assert.InDelta(t, 50.2, row[1].Float(), 1e-9)
	assert.Equal(t, int64(500), row[2].Int())
}

func TestSuite_MixedTypes(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "mixed_types")
	types := make([]model.ColumnType, 0, ds.NumColumns())
	for _, col := range ds.Columns() {
		types = append(types, col.Type)
	}
	assert.Equal(t, []model.ColumnType{
		model.ColumnTypeLong,
		model.ColumnTypeString,
		model.ColumnTypeLong,
		model.ColumnTypeDouble,
		model.ColumnTypeByte,
	}, types)

	for _, row := range ds.Rows() {
		active := row[4].Int()
		assert.True(t, active == 0 || active == 1, "active must be boolean-as-numeric")
	}
}

func TestSuite_WithMissing(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "with_missing")
	require.Equal(t, 5, ds.NumRows())

	// score: rows 2 and 5 carry the numeric missing sentinel
	for i, row := range ds.Rows() {
		wantMissing := i == 1 || i == 4
		assert.Equal(t, wantMissing, row[1].IsMissing(), "score row %d", i)

		// non-numeric columns use in-band placeholders, never missing
		assert.False(t, row[2].IsMissing(), "grade row %d", i)
		assert.False(t, row[3].IsMissing(), "count row %d", i)
	}

	// the text placeholder is the empty string, the boolean-ish one is 0
	assert.Equal(t, "", ds.Rows()[2][2].String())
	assert.Equal(t, int64(0), ds.Rows()[1][3].Int())
}

func TestSuite_LargeDataset(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "large_dataset")
	require.Equal(t, 10000, ds.NumRows())
	require.Equal(t, 5, ds.NumColumns())

	categories := map[string]bool{"A": true, "B": true, "C": true, "D": true}
	for i, row := range ds.Rows() {
		assert.Equal(t, int64(i), row[0].Int(), "id")
		v := row[2].Int()
		assert.True(t, v >= 0 && v < 1000, "random_int out of range: %d", v)
		assert.True(t, categories[row[3].String()], "unexpected category %q", row[3].String())
		assert.Equal(t, int64(10000+i), row[4].Int(), "sequence")
	}
}

func TestSuite_LargeDataset_Reproducible(t *testing.T) {
	t.Parallel()

	first := buildCase(t, "large_dataset")
	second := buildCase(t, "large_dataset")
	assert.True(t, first.Equal(second), "same seed must produce identical data")
}

func TestSuite_VersionMatrix(t *testing.T) {
	t.Parallel()

	for _, c := range Suite() {
		if c.Name != "version" {
			continue
		}
		assert.Equal(t, []int{113, 114, 115, 117, 118}, c.Versions)
		return
	}
	t.Fatal("version matrix case missing")
}

func TestSuite_Empty(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "empty")
	assert.Equal(t, 0, ds.NumRows())
	assert.Equal(t, 2, ds.NumColumns())
}

func TestSuite_StringLengths(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "string_lengths")
	require.Equal(t, 3, ds.NumColumns())

	// distinct length classes: short, tens of characters, near the
	// legacy 244-byte limit's order of magnitude
	assert.Equal(t, 3, ds.Width(0))
	assert.Equal(t, len(mediumString), ds.Width(1))
	assert.Equal(t, len(longString), ds.Width(2))
	assert.Greater(t, ds.Width(1), ds.Width(0))
	assert.Greater(t, ds.Width(2), ds.Width(1))

	// medium and long columns hold one value each, isolating length from content
	for _, row := range ds.Rows() {
		assert.Equal(t, mediumString, row[1].String())
		assert.Equal(t, longString, row[2].String())
	}
}

func TestSuite_SpecialChars(t *testing.T) {
	t.Parallel()

	ds := buildCase(t, "special_chars")
	for i, row := range ds.Rows() {
		for j, cell := range row {
			for _, c := range cell.String() {
				assert.Less(t, c, rune(128), "non-ASCII rune in row %d column %d", i, j)
			}
		}
	}
}
