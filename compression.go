package dtagen

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// newCompressionWriter wraps an io.Writer with a compression writer for
// the given type. Encoders are configured for reproducible output so the
// corpus stays byte-identical across runs.
func newCompressionWriter(writer io.Writer, compressionType CompressionType) (io.Writer, func() error, error) {
	switch compressionType {
	case CompressionNone:
		return writer, func() error { return nil }, nil

	case CompressionGZ:
		// zero ModTime keeps the gzip header timestamp-free
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported compression type for writing: %v", compressionType)
	}
}

// createCompressedWriterForFile creates a file and returns a writer that
// handles compression
func createCompressedWriterForFile(path string, compressionType CompressionType) (io.Writer, func() error, error) {
	file, err := os.Create(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}

	writer, cleanup, err := newCompressionWriter(file, compressionType)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	// Create a composite cleanup function
	compositeCleanup := func() error {
		var cleanupErr error
		if cleanup != nil {
			cleanupErr = cleanup()
		}
		if syncErr := file.Sync(); syncErr != nil && cleanupErr == nil {
			cleanupErr = syncErr
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}

	return writer, compositeCleanup, nil
}

// compressFixture writes a compressed copy of the fixture at path and
// returns the copy's path and byte size.
func compressFixture(path string, compressionType CompressionType) (string, int64, error) {
	if compressionType == CompressionNone {
		return "", 0, errors.New("dtagen: no compression configured")
	}

	src, err := os.ReadFile(path) //nolint:gosec // Path is produced by this package
	if err != nil {
		return "", 0, fmt.Errorf("dtagen: failed to read fixture %s: %w", path, err)
	}

	dst := path + compressionType.Extension()
	writer, cleanup, err := createCompressedWriterForFile(dst, compressionType)
	if err != nil {
		return "", 0, fmt.Errorf("dtagen: failed to create %s: %w", dst, err)
	}

	if _, err := writer.Write(src); err != nil {
		_ = cleanup()
		return "", 0, fmt.Errorf("dtagen: failed to write %s: %w", dst, err)
	}
	if err := cleanup(); err != nil {
		return "", 0, fmt.Errorf("dtagen: failed to finalize %s: %w", dst, err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return "", 0, fmt.Errorf("dtagen: failed to stat %s: %w", dst, err)
	}
	return dst, info.Size(), nil
}
