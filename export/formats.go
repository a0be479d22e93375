// Package export serializes a merged statement set to the two textual
// output syntaxes: the grouped, prefix-compacted block format and the
// flat absolute-identifier statement list. Both encodings are
// byte-deterministic under arbitrary statement insertion order.
package export

import "fmt"

// Format specifies the output serialization format.
type Format string

const (
	// FormatBlock produces the grouped, column-aligned block output.
	FormatBlock Format = "block"

	// FormatNTriples produces the flat one-triple-per-line output.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatBlock: {
		Name:        FormatBlock,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Grouped block format with prefix-compacted names",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "Flat statement list with absolute identifiers",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "block", "ttl", "turtle":
		return FormatBlock, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}
