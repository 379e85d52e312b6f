// Package dtagen generates a deterministic corpus of Stata .dta fixture
// files for validating downstream DTA readers.
//
// The corpus is a fixed suite of fixture cases, each a named schema plus
// data chosen to exercise one dimension of reader behavior: column types,
// missing-value encodings, format-version differences, string-length
// classes, size extremes. Generate materializes the whole suite into a
// directory and returns a report of what was written and which
// (case, version) pairs the format could not represent.
//
// Basic usage:
//
//	report, err := dtagen.Generate("./testdata")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, skip := range report.Skips() {
//		log.Printf("skipped %s: %s", skip.Case, skip.Reason)
//	}
//
// Compressed copies of every fixture can be emitted alongside the plain
// files:
//
//	report, err := dtagen.Generate("./testdata",
//		dtagen.NewOptions().WithCompression(dtagen.CompressionGZ))
//
// Generation is sequential, idempotent, and byte-reproducible: random
// fixture content derives from an explicitly seeded source (DefaultSeed
// unless overridden), and the binary writer stamps a fixed timestamp, so
// two runs with the same options produce identical files.
//
// The binary encoding itself lives in the dta subpackage behind the
// Serializer interface; dtagen never reads the files it writes.
package dtagen
