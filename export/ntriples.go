package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/semsketch/statement"
	"github.com/c360studio/semsketch/vocabulary/upper"
)

// NTriples serializes the set to the flat format: one
// absolute-identifier triple per line, in the same canonical order as
// the block format. Primary-key list objects are emitted as a
// parenthesized identifier list, which the raw statement parser accepts
// back.
func (e *Exporter) NTriples(set statement.Set) string {
	var sb strings.Builder
	for _, block := range orderBlocks(set) {
		for _, st := range block.statements {
			sb.WriteString(e.term(st.Subject))
			sb.WriteString(" ")
			sb.WriteString(e.term(st.Predicate))
			sb.WriteString(" ")
			sb.WriteString(e.ntriplesObject(st.Object))
			sb.WriteString(" .\n")
		}
	}
	return sb.String()
}

// term expands a qualified name to its absolute form. Unresolved <iri>
// terms pass through; a qualified name whose prefix is not in the map
// is wrapped unexpanded, which keeps the line well formed since the
// prefix label reads as a scheme.
func (e *Exporter) term(t string) string {
	if strings.HasPrefix(t, "<") {
		return t
	}
	if i := strings.Index(t, ":"); i >= 0 {
		if ns, ok := e.prefixes[t[:i]]; ok {
			return "<" + ns + t[i+1:] + ">"
		}
	}
	return "<" + t + ">"
}

func (e *Exporter) ntriplesObject(obj statement.Object) string {
	switch o := obj.(type) {
	case statement.Reference:
		return e.term(string(o))
	case statement.Literal:
		return `"` + escapeString(string(o)) + `"`
	case statement.Integer:
		return fmt.Sprintf("\"%d\"^^<%sinteger>", int(o), upper.XSDNamespace)
	case statement.List:
		terms := make([]string, len(o))
		for i, name := range o {
			terms[i] = e.term(name)
		}
		return "( " + strings.Join(terms, " ") + " )"
	default:
		return fmt.Sprintf("%v", obj)
	}
}
