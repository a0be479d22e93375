// Package statement defines the RDF statement model produced by diagram
// compilation: qualified-name triples, the deduplicating statement set,
// the triple generator over a validated element map, and the parser for
// user-authored raw statement text.
package statement

import (
	"strconv"
	"strings"
)

// Statement is one (subject, predicate, object) triple. Subject and
// Predicate are qualified names in prefix:localName form or, when no
// prefix resolved, absolute identifiers in <iri> form.
type Statement struct {
	Subject   string
	Predicate string
	Object    Object
}

// Key is the dedup key of the full triple.
func (s Statement) Key() string {
	return s.Subject + "\x00" + s.Predicate + "\x00" + s.Object.Key()
}

// Object is the object position of a statement: a Reference, a Literal,
// an Integer, or an ordered List of qualified names.
type Object interface {
	// Key is the canonical dedup key of the object.
	Key() string
}

// Reference is a qualified name, or an unresolved absolute identifier
// in <iri> form, in object position.
type Reference string

// Key implements Object.
func (r Reference) Key() string { return "r\x00" + string(r) }

// Literal is a string literal.
type Literal string

// Key implements Object.
func (l Literal) Key() string { return "l\x00" + string(l) }

// Integer is a bare integer literal.
type Integer int

// Key implements Object.
func (i Integer) Key() string { return "i\x00" + strconv.Itoa(int(i)) }

// List is an ordered sequence of qualified names. It is used only for
// primary-key objects.
type List []string

// Key implements Object.
func (l List) Key() string { return "k\x00" + strings.Join(l, " ") }

// Set is a set of unique statements keyed by the full triple.
// Duplicates collapse silently.
type Set map[string]Statement

// NewSet returns an empty set.
func NewSet() Set { return make(Set) }

// Add inserts a statement, collapsing exact-triple duplicates.
func (s Set) Add(st Statement) { s[st.Key()] = st }

// Merge inserts every statement of other into s.
func (s Set) Merge(other Set) {
	for _, st := range other {
		s.Add(st)
	}
}

// All returns the statements in unspecified order. Serialization
// imposes the canonical order downstream.
func (s Set) All() []Statement {
	out := make([]Statement, 0, len(s))
	for _, st := range s {
		out = append(out, st)
	}
	return out
}
