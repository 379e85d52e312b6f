package dtagen

import (
	"math/rand/v2"

	"github.com/dta-tools/dtagen/domain/model"
)

// Case is one logical fixture scenario: a named schema-plus-data build
// step and the format versions it targets. Name is also the output
// filename stem. A nil Versions slice targets the canonical version only;
// listing more than one version appends a _<version> suffix to each file.
type Case struct {
	// Name is the unique case identifier and filename stem
	Name string
	// Versions is the set of format versions to attempt; nil means the
	// canonical version
	Versions []int
	// Build materializes the dataset. The random source is injected so
	// reproducibility is part of the contract rather than ambient state;
	// cases without random content ignore it.
	Build func(r *rand.Rand) (*model.Dataset, error)
}

// Suite returns the fixture cases that make up the corpus, in generation
// order. Together they cover the behavioral surface a DTA reader must
// handle: every column type, missing-value encodings, format-version
// differences, string-length classes, the empty-dataset edge, and a
// volume case for performance testing.
func Suite() []Case {
	return []Case{
		{Name: "simple", Build: buildSimple},
		{Name: "mixed_types", Build: buildMixedTypes},
		{Name: "with_missing", Build: buildWithMissing},
		{Name: "large_dataset", Build: buildLargeDataset},
		{Name: "version", Versions: []int{113, 114, 115, 117, 118}, Build: buildVersionMatrix},
		{Name: "empty", Build: buildEmpty},
		{Name: "string_lengths", Build: buildStringLengths},
		{Name: "special_chars", Build: buildSpecialChars},
	}
}

// buildSimple covers small numeric data: integer and float columns, no
// missing values.
func buildSimple(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "id", Type: model.ColumnTypeLong},
		{Name: "value", Type: model.ColumnTypeDouble},
		{Name: "count", Type: model.ColumnTypeLong},
	}
	values := []float64{10.5, 20.3, 30.1, 40.7, 50.2}
	rows := make([][]model.Value, 0, len(values))
	for i, v := range values {
		rows = append(rows, []model.Value{
			model.NewInt(int64(i + 1)),
			model.NewFloat(v),
			model.NewInt(int64((i + 1) * 100)),
		})
	}
	return model.NewDataset("simple numeric data", columns, rows)
}

// buildMixedTypes covers integer, float, text, and boolean-as-numeric
// columns together.
func buildMixedTypes(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "id", Type: model.ColumnTypeLong},
		{Name: "name", Type: model.ColumnTypeString},
		{Name: "age", Type: model.ColumnTypeLong},
		{Name: "salary", Type: model.ColumnTypeDouble},
		{Name: "active", Type: model.ColumnTypeByte, Label: "boolean stored as 0/1"},
	}
	names := []string{"Alice", "Bob", "Charlie", "Diana"}
	ages := []int64{25, 30, 35, 28}
	salaries := []float64{50000.5, 60000.0, 75000.25, 55000.75}
	active := []int64{1, 0, 1, 1}

	rows := make([][]model.Value, 0, len(names))
	for i := range names {
		rows = append(rows, []model.Value{
			model.NewInt(int64(i + 1)),
			model.NewString(names[i]),
			model.NewInt(ages[i]),
			model.NewFloat(salaries[i]),
			model.NewInt(active[i]),
		})
	}
	return model.NewDataset("mixed data types", columns, rows)
}

// buildWithMissing covers missing-value encodings. Missing semantics are
// type- and version-dependent in the target format: the float column uses
// the real numeric missing sentinel, the text column uses the empty
// string as its no-value representation (the target version has no
// robust null text), and the boolean-like column substitutes 0 for the
// same reason.
func buildWithMissing(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "id", Type: model.ColumnTypeLong},
		{Name: "score", Type: model.ColumnTypeDouble},
		{Name: "grade", Type: model.ColumnTypeString},
		{Name: "count", Type: model.ColumnTypeLong},
	}
	rows := [][]model.Value{
		{model.NewInt(1), model.NewFloat(85.5), model.NewString("A"), model.NewInt(10)},
		{model.NewInt(2), model.NewMissing(), model.NewString("B"), model.NewInt(0)},
		{model.NewInt(3), model.NewFloat(92.3), model.NewString(""), model.NewInt(30)},
		{model.NewInt(4), model.NewFloat(78.1), model.NewString("C"), model.NewInt(0)},
		{model.NewInt(5), model.NewMissing(), model.NewString("A"), model.NewInt(50)},
	}
	return model.NewDataset("data with missing values", columns, rows)
}

// largeDatasetRows is the row count of the volume case
const largeDatasetRows = 10000

// largeDatasetCategories is the fixed label set for the categorical column
var largeDatasetCategories = []string{"A", "B", "C", "D"}

// buildLargeDataset covers volume: thousands of rows with float, integer,
// categorical, and sequential columns. All random content comes from the
// injected seeded source.
func buildLargeDataset(r *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "id", Type: model.ColumnTypeLong},
		{Name: "random_float", Type: model.ColumnTypeDouble},
		{Name: "random_int", Type: model.ColumnTypeLong},
		{Name: "category", Type: model.ColumnTypeString},
		{Name: "sequence", Type: model.ColumnTypeLong},
	}
	rows := make([][]model.Value, 0, largeDatasetRows)
	for i := 0; i < largeDatasetRows; i++ {
		rows = append(rows, []model.Value{
			model.NewInt(int64(i)),
			model.NewFloat(r.NormFloat64()),
			model.NewInt(r.Int64N(1000)),
			model.NewString(largeDatasetCategories[r.IntN(len(largeDatasetCategories))]),
			model.NewInt(int64(largeDatasetRows + i)),
		})
	}
	return model.NewDataset("large dataset for performance testing", columns, rows)
}

// buildVersionMatrix covers format-version differences: one small fixed
// schema emitted under every version the corpus tracks. Versions the
// writer cannot emit are recorded as skips by the generator.
func buildVersionMatrix(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "x", Type: model.ColumnTypeLong},
		{Name: "y", Type: model.ColumnTypeDouble},
		{Name: "z", Type: model.ColumnTypeString},
	}
	words := []string{"hello", "world", "test"}
	rows := make([][]model.Value, 0, len(words))
	for i, w := range words {
		rows = append(rows, []model.Value{
			model.NewInt(int64(i + 1)),
			model.NewFloat(float64(i + 4)),
			model.NewString(w),
		})
	}
	return model.NewDataset("version matrix", columns, rows)
}

// buildEmpty covers the zero-row edge: columns with defined types and no
// observations.
func buildEmpty(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "col1", Type: model.ColumnTypeDouble},
		{Name: "col2", Type: model.ColumnTypeString},
	}
	return model.NewDataset("empty dataset", columns, nil)
}

// String content of the length-class columns. Rows are identical within
// each column so the length dimension is isolated from content variation.
const (
	mediumString = "medium length string"
	longString   = "This is a very long string that should test the string handling capabilities of our extension"
)

// buildStringLengths covers the short/medium/long string width classes.
func buildStringLengths(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "short_str", Type: model.ColumnTypeString},
		{Name: "medium_str", Type: model.ColumnTypeString},
		{Name: "long_str", Type: model.ColumnTypeString},
	}
	shorts := []string{"a", "bb", "ccc"}
	rows := make([][]model.Value, 0, len(shorts))
	for _, s := range shorts {
		rows = append(rows, []model.Value{
			model.NewString(s),
			model.NewString(mediumString),
			model.NewString(longString),
		})
	}
	return model.NewDataset("string length classes", columns, rows)
}

// buildSpecialChars covers baseline encoding handling with the portable
// ASCII subset: letters, punctuation, and digit strings.
func buildSpecialChars(_ *rand.Rand) (*model.Dataset, error) {
	columns := []model.Column{
		{Name: "ascii", Type: model.ColumnTypeString},
		{Name: "punctuation", Type: model.ColumnTypeString},
		{Name: "numbers", Type: model.ColumnTypeString},
	}
	rows := [][]model.Value{
		{model.NewString("hello"), model.NewString("data!"), model.NewString("123")},
		{model.NewString("world"), model.NewString("value?"), model.NewString("456")},
		{model.NewString("test"), model.NewString("end."), model.NewString("789")},
	}
	return model.NewDataset("ascii character subset", columns, rows)
}
