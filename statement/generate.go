package statement

import (
	"sort"

	"github.com/c360studio/semsketch/diagram"
	"github.com/c360studio/semsketch/label"
	"github.com/c360studio/semsketch/vocabulary/upper"
)

// Classification tells the rendering collaborator whether an element
// contributed statements. Ignored elements are not errors; the renderer
// dims them and nothing else depends on the value.
type Classification int

// Classification values.
const (
	Ignored Classification = iota
	Used
)

// String returns the classification name.
func (c Classification) String() string {
	if c == Used {
		return "used"
	}
	return "ignored"
}

// Result is the outcome of one generation pass.
type Result struct {
	// Statements is the generated statement set.
	Statements Set

	// Elements maps every element id to its classification.
	Elements map[string]Classification
}

type pkEntry struct {
	index int
	name  string
}

// Generate walks a validated element map and produces the generated
// statement set together with a classification for every element.
// Iteration order does not matter: the result is a set, and downstream
// canonicalization imposes the final order.
func Generate(elements diagram.ElementMap, domain string) Result {
	res := Result{
		Statements: NewSet(),
		Elements:   make(map[string]Classification, len(elements)),
	}
	for id := range elements {
		res.Elements[id] = Ignored
	}

	pks := make(map[string][]pkEntry)

	for id, el := range elements {
		switch el := el.(type) {
		case diagram.Diamond:
			tok, ok := label.Parse(el.Text)
			if ok && tok.DirectClass {
				res.Statements.Add(Statement{tok.Name, upper.RDFType, Reference(upper.DirectClass)})
				res.Elements[id] = Used
			}
		case diagram.Arrow:
			generateArrow(elements, el, &res, pks)
		}
	}

	for _, subject := range sortedPKSubjects(pks) {
		entries := pks[subject]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].index != entries[j].index {
				return entries[i].index < entries[j].index
			}
			return entries[i].name < entries[j].name
		})
		names := make(List, len(entries))
		for i, e := range entries {
			names[i] = e.name
		}
		res.Statements.Add(Statement{subject, upper.PrimaryKey, names})
	}

	if domain != "" {
		subject := domain + ":"
		res.Statements.Add(Statement{subject, upper.RDFType, Reference(upper.DomainModel)})
		res.Statements.Add(Statement{subject, upper.Domain, Literal(domain)})
	}

	return res
}

// generateArrow classifies a bound arrow by its target variant and
// emits the attribute or relationship statements. An arrow with an
// unbound endpoint, a non-diamond source, or an unparseable label on
// any participant stays ignored.
func generateArrow(elements diagram.ElementMap, arrow diagram.Arrow, res *Result, pks map[string][]pkEntry) {
	if arrow.Source == nil || arrow.Target == nil {
		return
	}
	source, ok := elements[*arrow.Source].(diagram.Diamond)
	if !ok {
		return
	}
	target, ok := elements[*arrow.Target]
	if !ok {
		return
	}
	sourceTok, ok := label.Parse(source.Text)
	if !ok {
		return
	}
	arrowTok, ok := label.Parse(arrow.Text)
	if !ok {
		return
	}

	switch target := target.(type) {
	case diagram.Rectangle:
		targetTok, ok := label.Parse(target.Text)
		if !ok {
			return
		}
		res.Statements.Add(Statement{arrowTok.Name, upper.RDFType, Reference(upper.Attribute)})
		res.Statements.Add(Statement{arrowTok.Name, upper.Datatype, Reference(targetTok.Name)})
	case diagram.Diamond:
		targetTok, ok := label.Parse(target.Text)
		if !ok {
			return
		}
		res.Statements.Add(Statement{arrowTok.Name, upper.RDFType, Reference(upper.Relationship)})
		res.Statements.Add(Statement{arrowTok.Name, upper.Class, Reference(targetTok.Name)})
	default:
		return
	}

	res.Statements.Add(Statement{sourceTok.Name, upper.Property, Reference(arrowTok.Name)})

	if arrowTok.HasCardinality {
		res.Statements.Add(Statement{arrowTok.Name, upper.MinCount, Integer(arrowTok.Min)})
		if arrowTok.Max != label.Unbounded {
			res.Statements.Add(Statement{arrowTok.Name, upper.MaxCount, Integer(arrowTok.Max)})
		}
		if arrowTok.PrimaryKey > 0 {
			pks[sourceTok.Name] = append(pks[sourceTok.Name], pkEntry{arrowTok.PrimaryKey, arrowTok.Name})
		}
	}

	res.Elements[arrow.ID] = Used
	res.Elements[source.ID] = Used
	res.Elements[target.ElementID()] = Used
}

func sortedPKSubjects(pks map[string][]pkEntry) []string {
	subjects := make([]string, 0, len(pks))
	for s := range pks {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}
