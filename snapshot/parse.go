package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrParse is returned when a snapshot document is not valid JSON for the schema.
	ErrParse = errors.New("invalid snapshot")
	// ErrNotFound is returned when a snapshot file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrMissingField is returned when a field required for rendering is absent or zero.
	ErrMissingField = errors.New("missing snapshot field")
)

// Parse decodes a snapshot document. Decoding is structural only: absent fields
// keep their zero value and are reported later by [ProtocolSnapshot.Validate].
func Parse(data []byte) (*ProtocolSnapshot, error) {
	var s ProtocolSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &s, nil
}

// Load reads and parses the snapshot file at path.
func Load(path string) (*ProtocolSnapshot, error) {
	if err := Exists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadPair checks that both files exist before loading either of them.
func LoadPair(oldPath, newPath string) (oldSnap, newSnap *ProtocolSnapshot, err error) {
	for _, p := range []string{oldPath, newPath} {
		if err = Exists(p); err != nil {
			return nil, nil, err
		}
	}

	if oldSnap, err = Load(oldPath); err != nil {
		return nil, nil, err
	}
	if newSnap, err = Load(newPath); err != nil {
		return nil, nil, err
	}

	return oldSnap, newSnap, nil
}

// Exists returns an error wrapping [ErrNotFound] naming path when no regular
// file exists there.
func Exists(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	return nil
}
