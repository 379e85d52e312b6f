// Command dtagen generates the Stata .dta fixture corpus used to test
// DTA readers.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/dta-tools/dtagen"
)

var (
	outputDir = flag.String("output", "testdata", "Output directory for generated fixtures")
	compress  = flag.String("compress", "none", "Also emit compressed fixture copies (none|gz|xz|zst)")
	seed      = flag.Uint64("seed", dtagen.DefaultSeed, "Seed for random fixture content")
)

func main() {
	flag.Parse()

	compression, err := dtagen.ParseCompressionType(*compress)
	if err != nil {
		log.Fatal(err)
	}

	opts := dtagen.NewOptions().
		WithCompression(compression).
		WithSeed(*seed)

	report, err := dtagen.Generate(*outputDir, opts)
	if err != nil {
		log.Fatal(err)
	}

	for _, o := range report.Outcomes() {
		if o.Skipped {
			fmt.Printf("skipped %s (version %d): %s\n", o.Case, o.Version, o.Reason)
			continue
		}
		fmt.Printf("created %s (%d bytes)\n", filepath.Base(o.Path), o.Size)
	}

	files := report.Files()
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	fmt.Printf("\n%d files in %s (%s total):\n", len(files), *outputDir, humanize.Bytes(uint64(report.TotalBytes())))
	for _, f := range files {
		fmt.Printf("  %s (%s)\n", filepath.Base(f.Path), humanize.Bytes(uint64(f.Size)))
	}
}
