// Package format provides lesson input format detection for the lectern
// library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported lesson document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// YAML indicates a YAML lesson document.
	YAML
	// JSON indicates a JSON lesson document. JSON is a subset of YAML, so
	// both decode through the same path; the distinction only matters for
	// discovery and reporting.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case YAML:
		return ".yml"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines the lesson format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yml", ".yaml":
		return YAML
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// DetectFromContent sniffs the leading bytes of a document to determine
// its format. A document opening with '{' or '[' is treated as JSON;
// anything else non-empty is assumed to be YAML. Returns Unknown for
// empty input.
func DetectFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return JSON
	}
	return YAML
}

// IsTopicFile reports whether a path looks like a lesson document that
// batch discovery should pick up.
func IsTopicFile(path string) bool {
	return Detect(path) != Unknown
}
