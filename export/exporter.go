package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semsketch/diagram"
	"github.com/c360studio/semsketch/statement"
	"github.com/c360studio/semsketch/vocabulary/upper"
)

// Exporter serializes statement sets against a prefix map. The map is
// the document's prefixes merged over the built-in rdf/upper/xsd
// namespaces; a document may rebind a built-in label.
type Exporter struct {
	prefixes map[string]string
}

// NewExporter creates an exporter for a document's prefix map.
func NewExporter(docPrefixes map[string]string) *Exporter {
	prefixes := upper.BuiltinPrefixes()
	for label, ns := range docPrefixes {
		prefixes[label] = ns
	}
	return &Exporter{prefixes: prefixes}
}

// Prefixes returns a copy of the merged prefix map, for callers that
// compact raw statements against the same namespaces.
func (e *Exporter) Prefixes() map[string]string {
	out := make(map[string]string, len(e.prefixes))
	for label, ns := range e.prefixes {
		out[label] = ns
	}
	return out
}

// Export serializes the set to the specified format.
func (e *Exporter) Export(set statement.Set, format Format) (string, error) {
	switch format {
	case FormatBlock:
		return e.Block(set), nil
	case FormatNTriples:
		return e.NTriples(set), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Statements computes the unified statement set of a validated
// document: the generated set merged with the parsed raw statements,
// exact-triple duplicates collapsed. With strict set, a raw identifier
// that no prefix matches is an error instead of passing through.
func Statements(doc *diagram.Document, strict bool) (statement.Set, error) {
	res := statement.Generate(doc.Elements, doc.Domain)
	parse := statement.ParseRaw
	if strict {
		parse = statement.ParseRawStrict
	}
	raw, err := parse(doc.RawStatements, NewExporter(doc.Prefixes).Prefixes())
	if err != nil {
		return nil, err
	}
	set := res.Statements
	for _, st := range raw {
		set.Add(st)
	}
	return set, nil
}

// subjectBlock is one subject's statements in serialization order.
type subjectBlock struct {
	subject    string
	statements []statement.Statement
}

// orderBlocks imposes the canonical statement order: subjects by
// case-insensitive local name, predicates by the fixed ontology
// priority list then case-sensitively by full qualified form, equal
// predicates by object key.
func orderBlocks(set statement.Set) []subjectBlock {
	grouped := make(map[string][]statement.Statement)
	for _, st := range set {
		grouped[st.Subject] = append(grouped[st.Subject], st)
	}

	subjects := make([]string, 0, len(grouped))
	for s := range grouped {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		a := strings.ToLower(localName(subjects[i]))
		b := strings.ToLower(localName(subjects[j]))
		if a != b {
			return a < b
		}
		return subjects[i] < subjects[j]
	})

	blocks := make([]subjectBlock, 0, len(subjects))
	for _, subject := range subjects {
		sts := grouped[subject]
		sort.Slice(sts, func(i, j int) bool {
			ri, rj := predicateRank(sts[i].Predicate), predicateRank(sts[j].Predicate)
			if ri != rj {
				return ri < rj
			}
			if sts[i].Predicate != sts[j].Predicate {
				return sts[i].Predicate < sts[j].Predicate
			}
			return sts[i].Object.Key() < sts[j].Object.Key()
		})
		blocks = append(blocks, subjectBlock{subject: subject, statements: sts})
	}
	return blocks
}

// predicateRank returns the position in the fixed ontology ordering, or
// its length for predicates outside the list.
func predicateRank(predicate string) int {
	for i, p := range upper.PredicateOrder {
		if p == predicate {
			return i
		}
	}
	return len(upper.PredicateOrder)
}

// localName extracts the local part of a qualified name, or the last
// fragment/path segment of an unresolved <iri> term.
func localName(term string) string {
	if strings.HasPrefix(term, "<") && strings.HasSuffix(term, ">") {
		iri := term[1 : len(term)-1]
		if i := strings.LastIndexAny(iri, "#/"); i >= 0 {
			return iri[i+1:]
		}
		return iri
	}
	if i := strings.Index(term, ":"); i >= 0 {
		return term[i+1:]
	}
	return term
}

// prefixOf returns the prefix label of a qualified name, or empty for
// unresolved <iri> terms.
func prefixOf(term string) string {
	if strings.HasPrefix(term, "<") {
		return ""
	}
	if i := strings.Index(term, ":"); i >= 0 {
		return term[:i]
	}
	return ""
}

// escapeString escapes special characters in string literals.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
