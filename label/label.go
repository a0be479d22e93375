// Package label parses the short text annotations on diamonds,
// rectangles and arrows into semantic tokens: a qualified name plus an
// optional parenthetical marker carrying a class declaration or a
// cardinality with an optional primary-key index.
//
// Parsing is deliberately lenient. A malformed label never produces an
// error; it simply yields no token, and the element it annotates is
// classified as ignored by the triple generator. Freehand sketching
// must not block on typos.
package label

import (
	"regexp"
	"strconv"
	"strings"
)

// Unbounded is the Max value of a cardinality written as "min..n".
const Unbounded = -1

// Token is the semantic content extracted from one label.
type Token struct {
	// Name is the qualified name, in prefix:localName form.
	Name string

	// DirectClass is set when the marker is "DC", declaring the labeled
	// diamond an ontology class.
	DirectClass bool

	// HasCardinality is set when the marker carries a min..max range.
	// Min and Max are only meaningful when it is set; Max is Unbounded
	// for an open upper bound.
	HasCardinality bool
	Min            int
	Max            int

	// PrimaryKey is the 1-based position of the labeled property in its
	// source class's primary key, or zero when absent.
	PrimaryKey int
}

var (
	qnamePattern  = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.-]*):([A-Za-z0-9_][A-Za-z0-9_.-]*)`)
	cardPattern   = regexp.MustCompile(`^(\d+)\.\.(\d+|n)(?:\s+PK([1-9]\d*))?`)
	markerPattern = regexp.MustCompile(`\(([^)]*)\)`)
)

// Parse extracts a token from label text. The second return value is
// false when the text carries no parseable qualified name.
func Parse(text string) (Token, bool) {
	trimmed := strings.TrimSpace(text)
	m := qnamePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Token{}, false
	}
	tok := Token{Name: m[1] + ":" + m[2]}

	marker := markerPattern.FindStringSubmatch(trimmed[len(m[0]):])
	if marker == nil {
		return tok, true
	}
	applyMarker(&tok, strings.TrimSpace(marker[1]))
	return tok, true
}

// applyMarker interprets the parenthetical marker. Unrecognized content
// is ignored rather than rejected.
func applyMarker(tok *Token, marker string) {
	if marker == "DC" {
		tok.DirectClass = true
		return
	}
	m := cardPattern.FindStringSubmatch(marker)
	if m == nil {
		return
	}
	min, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	max := Unbounded
	if m[2] != "n" {
		max, err = strconv.Atoi(m[2])
		if err != nil {
			return
		}
	}
	tok.HasCardinality = true
	tok.Min = min
	tok.Max = max
	if m[3] != "" {
		k, err := strconv.Atoi(m[3])
		if err == nil {
			tok.PrimaryKey = k
		}
	}
}
