package document

import (
	"path/filepath"
	"strings"

	"github.com/vango-dev/html5el/internal/errors"
)

// Format is the encoding of a description.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// Extension returns the canonical file extension of the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat converts a format name ("json", "yaml", "yml", "toml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.New("E020").WithDetailf("format %q", name)
}

// FormatFromPath selects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New("E020").WithDetailf("%s has no extension", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.New("E020").WithDetailf("extension %q of %s", ext, path)
	}
	return f, nil
}

// IsDescription reports whether path has a description extension.
func IsDescription(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}
