package publisher

import (
	"context"
	"crypto"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
	"github.com/alcatrazescapee/epsilon-publish/internal/logger"

	// Register hash implementations used for artifact checksums.
	_ "crypto/sha1" //nolint:gosec // Maven repositories still expect .sha1 files.
	_ "crypto/sha256"
)

var errHashUnavailable = errors.New("hash function unavailable")

// checksumFunctions are computed for every artifact found on disk, keyed by
// the extension a Maven repository uses for the checksum file.
//
//nolint:gochecknoglobals // Fixed algorithm set.
var checksumFunctions = map[string]crypto.Hash{
	"sha1":   crypto.SHA1,
	"sha256": crypto.SHA256,
}

// attachChecksums marks which planned artifacts exist in dir and records
// their digests. Missing files are not an error. Names that would resolve
// outside dir are never opened.
func attachChecksums(ctx context.Context, dir string, artifacts []publication.Artifact) error {
	for i := range artifacts {
		name := artifacts[i].Name
		if !filepath.IsLocal(name) || filepath.Base(name) != name {
			logger.WarnKV(ctx, "Artifact name escapes the artifacts directory, skipping checksum", "name", name)

			continue
		}

		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		sums, err := fileChecksums(path)
		if err != nil {
			return err
		}

		artifacts[i].Present = true
		artifacts[i].Checksums = sums
	}

	return nil
}

// fileChecksums returns hex digests of the file for every checksum function.
func fileChecksums(path string) (map[string]string, error) {
	hashers := make(map[string]hash.Hash, len(checksumFunctions))
	writers := make([]io.Writer, 0, len(checksumFunctions))

	for name, fn := range checksumFunctions {
		if !fn.Available() {
			return nil, fmt.Errorf("checksum %s: %w", name, errHashUnavailable)
		}

		h := fn.New()
		hashers[name] = h
		writers = append(writers, h)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	if _, err = io.Copy(io.MultiWriter(writers...), f); err != nil {
		return nil, fmt.Errorf("calculate checksum of %s: %w", path, err)
	}

	result := make(map[string]string, len(hashers))
	for name, h := range hashers {
		result[name] = hex.EncodeToString(h.Sum(nil))
	}

	return result, nil
}
