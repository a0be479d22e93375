package diagram

import (
	"encoding/json"
	"fmt"
)

// ElementType discriminates the element union.
type ElementType string

// Element type constants name the five element variants.
const (
	TypeRectangle ElementType = "rectangle"
	TypeDiamond   ElementType = "diamond"
	TypeArrow     ElementType = "arrow"
	TypeText      ElementType = "text"
	TypeTree      ElementType = "tree"
)

// Element is the tagged union over the diagram element variants.
// Exactly five types implement it: Rectangle, Diamond, Arrow, Text and
// Tree. Consumers dispatch with an exhaustive type switch.
type Element interface {
	ElementID() string
	ElementType() ElementType
}

// Rectangle is a box element. Its label denotes a datatype.
type Rectangle struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text"`
}

// ElementID returns the element id.
func (r Rectangle) ElementID() string { return r.ID }

// ElementType returns TypeRectangle.
func (r Rectangle) ElementType() ElementType { return TypeRectangle }

// MarshalJSON encodes the rectangle with its type discriminant.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	type alias Rectangle
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		alias
	}{TypeRectangle, alias(r)})
}

// Diamond is a decision-shaped element. Its label may declare an
// ontology class.
type Diamond struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Text   string  `json:"text"`
}

// ElementID returns the element id.
func (d Diamond) ElementID() string { return d.ID }

// ElementType returns TypeDiamond.
func (d Diamond) ElementType() ElementType { return TypeDiamond }

// MarshalJSON encodes the diamond with its type discriminant.
func (d Diamond) MarshalJSON() ([]byte, error) {
	type alias Diamond
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		alias
	}{TypeDiamond, alias(d)})
}

// Arrow connects two elements. A nil endpoint means the arrow is
// unbound and contributes no statement.
type Arrow struct {
	ID     string  `json:"id"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Text   string  `json:"text"`
	Source *string `json:"source"`
	Target *string `json:"target"`
}

// ElementID returns the element id.
func (a Arrow) ElementID() string { return a.ID }

// ElementType returns TypeArrow.
func (a Arrow) ElementType() ElementType { return TypeArrow }

// MarshalJSON encodes the arrow with its type discriminant.
func (a Arrow) MarshalJSON() ([]byte, error) {
	type alias Arrow
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		alias
	}{TypeArrow, alias(a)})
}

// Text is a free-standing annotation. It never contributes statements.
type Text struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// ElementID returns the element id.
func (t Text) ElementID() string { return t.ID }

// ElementType returns TypeText.
func (t Text) ElementType() ElementType { return TypeText }

// MarshalJSON encodes the text element with its type discriminant.
func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		alias
	}{TypeText, alias(t)})
}

// TreeItem is one parent-to-child edge in a tree element. Both fields
// reference diamond element ids.
type TreeItem struct {
	Parent  string `json:"parent"`
	Element string `json:"element"`
}

// Tree declares a hierarchy over diamond elements. The directed graph
// formed by its items must be acyclic and fully reachable from Root.
type Tree struct {
	ID    string     `json:"id"`
	Root  string     `json:"root"`
	Items []TreeItem `json:"items"`
}

// ElementID returns the element id.
func (t Tree) ElementID() string { return t.ID }

// ElementType returns TypeTree.
func (t Tree) ElementType() ElementType { return TypeTree }

// MarshalJSON encodes the tree with its type discriminant.
func (t Tree) MarshalJSON() ([]byte, error) {
	type alias Tree
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		alias
	}{TypeTree, alias(t)})
}

// ElementMap maps element ids to elements. For every entry the
// element's own id equals the map key.
type ElementMap map[string]Element

// UnmarshalJSON decodes the map, dispatching each entry on its type
// discriminant.
func (m *ElementMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ElementMap, len(raw))
	for id, msg := range raw {
		el, err := decodeElement(msg)
		if err != nil {
			return fmt.Errorf("element %q: %w", id, err)
		}
		out[id] = el
	}
	*m = out
	return nil
}

func decodeElement(data []byte) (Element, error) {
	var probe struct {
		Type ElementType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case TypeRectangle:
		var r Rectangle
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return r, nil
	case TypeDiamond:
		var d Diamond
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case TypeArrow:
		var a Arrow
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, err
		}
		return a, nil
	case TypeText:
		var t Text
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TypeTree:
		var t Tree
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown element type: %q", probe.Type)
	}
}

// Document is the diagram document handed over by the editing
// collaborator on every observable change.
type Document struct {
	Prefixes      map[string]string `json:"prefixes"`
	Domain        string            `json:"domain"`
	Elements      ElementMap        `json:"elements"`
	RawStatements string            `json:"rawStatements"`
}

// Scene is the pan/zoom transform owned by the rendering collaborator.
// It is validated here but is not part of the document.
type Scene struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Parse decodes a document from its JSON encoding, validating the raw
// value before building the typed form. It returns a *ValidationError
// for structural violations.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := ValidateDocument(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}
