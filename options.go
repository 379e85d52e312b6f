package dtagen

import "fmt"

// DefaultSeed is the documented seed for fixture cases with random
// content. The value is fixed so regenerated corpora are byte-identical.
const DefaultSeed uint64 = 42

// CompressionType represents the compression applied to fixture copies
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZ:
		return "gz"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionNone:
		return ""
	case CompressionGZ:
		return ".gz"
	case CompressionXZ:
		return ".xz"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}

// ParseCompressionType converts a compression name as accepted on the
// command line into a CompressionType.
func ParseCompressionType(s string) (CompressionType, error) {
	switch s {
	case "", "none":
		return CompressionNone, nil
	case "gz", "gzip":
		return CompressionGZ, nil
	case "xz":
		return CompressionXZ, nil
	case "zst", "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Options configures fixture generation.
//
// Example:
//
//	options := NewOptions().
//		WithCompression(CompressionGZ).
//		WithSeed(42)
//
//	report, err := Generate("./testdata", options)
type Options struct {
	// Compression, when not CompressionNone, emits an additional
	// compressed copy of every fixture file
	Compression CompressionType
	// Seed feeds the random source injected into fixture cases
	Seed uint64
	// Serializer overrides the format writer; nil selects the built-in
	// DTA writer
	Serializer Serializer
}

// NewOptions creates default generation options (no compression, the
// documented seed, the built-in DTA writer).
func NewOptions() Options {
	return Options{
		Compression: CompressionNone,
		Seed:        DefaultSeed,
	}
}

// WithCompression sets the compression applied to fixture copies
func (o Options) WithCompression(compression CompressionType) Options {
	o.Compression = compression
	return o
}

// WithSeed sets the seed for random fixture content
func (o Options) WithSeed(seed uint64) Options {
	o.Seed = seed
	return o
}

// WithSerializer sets the serialization collaborator
func (o Options) WithSerializer(s Serializer) Options {
	o.Serializer = s
	return o
}
