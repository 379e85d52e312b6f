package dtagen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dta-tools/dtagen/domain/model"
	"github.com/dta-tools/dtagen/dta"
)

// Serializer is the serialization collaborator: it encodes a dataset in
// one format version and writes it to a destination path. It must fail
// with an error matching dta.ErrUnsupportedVersion when the version
// cannot represent the schema; that is the only error class Generate
// records instead of propagating.
type Serializer interface {
	Serialize(ds *model.Dataset, version int, path string) error
}

// Generate materializes the full fixture suite into outputDir, creating
// the directory if absent. Per (case, version) pair it either writes
// <name>.dta (or <name>_<version>.dta for multi-version cases) and
// records the file size, or records a version-incompatibility skip and
// continues. Filesystem failures abort the run.
//
// Re-runs are idempotent: same-named files are overwritten, other files
// in the directory are left alone, and with the same seed the output is
// byte-identical.
func Generate(outputDir string, opts ...Options) (*Report, error) {
	options := NewOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	serializer := options.Serializer
	if serializer == nil {
		serializer = dta.NewWriter()
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("dtagen: failed to create output directory %s: %w", outputDir, err)
	}

	suite := Suite()
	if len(suite) == 0 {
		return nil, ErrEmptySuite
	}

	report := &Report{}
	for _, c := range suite {
		// A fresh source per case keeps every case reproducible on its
		// own, independent of suite order.
		r := rand.New(rand.NewPCG(options.Seed, options.Seed))
		ds, err := c.Build(r)
		if err != nil {
			return nil, fmt.Errorf("dtagen: case %s: %w", c.Name, err)
		}

		versioned := len(c.Versions) > 1
		versions := c.Versions
		if len(versions) == 0 {
			versions = []int{dta.CanonicalVersion}
		}

		for _, version := range versions {
			name := c.Name + ".dta"
			if versioned {
				name = fmt.Sprintf("%s_%d.dta", c.Name, version)
			}
			path := filepath.Join(outputDir, name)

			if err := serializer.Serialize(ds, version, path); err != nil {
				if errors.Is(err, dta.ErrUnsupportedVersion) {
					report.append(Outcome{
						Case:    c.Name,
						Version: version,
						Path:    path,
						Skipped: true,
						Reason:  err.Error(),
					})
					continue
				}
				return nil, fmt.Errorf("dtagen: case %s version %d: %w", c.Name, version, err)
			}

			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("dtagen: failed to stat %s: %w", path, err)
			}
			report.append(Outcome{
				Case:    c.Name,
				Version: version,
				Path:    path,
				Size:    info.Size(),
			})

			if options.Compression != CompressionNone {
				compressedPath, size, err := compressFixture(path, options.Compression)
				if err != nil {
					return nil, err
				}
				report.append(Outcome{
					Case:    c.Name,
					Version: version,
					Path:    compressedPath,
					Size:    size,
				})
			}
		}
	}

	return report, nil
}
