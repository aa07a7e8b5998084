package descriptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alcatrazescapee/epsilon-publish/internal/config"
	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
)

// FileRepository stores the descriptor as YAML or JSON on disk.
type FileRepository struct {
	// path is the filesystem location of the descriptor.
	path string
	// format is the encoding used for Save and, unless detected, for Load.
	format config.Format
}

var (
	// ErrNotFound is returned when the descriptor file does not exist.
	ErrNotFound = errors.New("descriptor not found")

	// errDescriptorIsNotSet is returned when a nil descriptor is saved.
	errDescriptorIsNotSet = errors.New("descriptor is not set")
	// errUnsupportedFormat is returned for encodings the repository cannot produce.
	errUnsupportedFormat = errors.New("unsupported descriptor format")
)

// NewFileRepository creates a repository for path using format.
// An empty format is detected from the extension, defaulting to YAML.
func NewFileRepository(path string, format config.Format) *FileRepository {
	if format == "" {
		format = DetectFormat(path)
	}

	return &FileRepository{
		path:   filepath.Clean(path),
		format: format,
	}
}

// DetectFormat guesses the encoding from the file extension.
func DetectFormat(path string) config.Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return config.FormatJSON
	}

	return config.FormatYAML
}

// Load reads the descriptor from disk.
func (r *FileRepository) Load(_ context.Context) (*publication.Descriptor, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read descriptor file: %w", err)
	}

	return Decode(contents, r.format)
}

// Save writes the descriptor to disk. The file may contain credentials, so
// it always ends up with config.DefaultFilePermissions, even when it existed.
func (r *FileRepository) Save(_ context.Context, desc *publication.Descriptor) error {
	data, err := Encode(desc, r.format)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open descriptor file: %w", err)
	}

	// An existing file keeps its mode on open; tighten it before credentials are written.
	if err = f.Chmod(config.DefaultFilePermissions); err != nil {
		_ = f.Close()

		return fmt.Errorf("restrict descriptor file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()

		return fmt.Errorf("write descriptor file: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("close descriptor file: %w", err)
	}

	return nil
}

// Write encodes desc to w.
func Write(w io.Writer, desc *publication.Descriptor, format config.Format) error {
	data, err := Encode(desc, format)
	if err != nil {
		return err
	}

	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	return nil
}

// Encode renders desc in the requested format.
func Encode(desc *publication.Descriptor, format config.Format) ([]byte, error) {
	if desc == nil {
		return nil, errDescriptorIsNotSet
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case config.FormatYAML, "":
		data, err = yaml.Marshal(desc)
	case config.FormatJSON:
		data, err = json.MarshalIndent(desc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}

	return data, nil
}

// Decode parses a descriptor in the given format.
func Decode(data []byte, format config.Format) (*publication.Descriptor, error) {
	var (
		desc publication.Descriptor
		err  error
	)

	switch format {
	case config.FormatYAML, "":
		err = yaml.Unmarshal(data, &desc)
	case config.FormatJSON:
		err = json.Unmarshal(data, &desc)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}

	return &desc, nil
}
