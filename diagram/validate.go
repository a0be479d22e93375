package diagram

import (
	"math"
	"sort"
)

// MinElementSize is the smallest permitted absolute width or height of
// a rectangle or diamond, in device-independent units.
const MinElementSize = 24

type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldString
	fieldEndpoint
	fieldItems
)

type fieldRule struct {
	name string
	kind fieldKind
}

// elementFields fixes the per-variant field set and the order in which
// fields are checked, so the first reported violation is deterministic.
// The id and type fields are handled before dispatch.
var elementFields = map[ElementType][]fieldRule{
	TypeRectangle: {
		{"x", fieldNumber}, {"y", fieldNumber},
		{"width", fieldNumber}, {"height", fieldNumber},
		{"text", fieldString},
	},
	TypeDiamond: {
		{"x", fieldNumber}, {"y", fieldNumber},
		{"width", fieldNumber}, {"height", fieldNumber},
		{"text", fieldString},
	},
	TypeArrow: {
		{"x1", fieldNumber}, {"y1", fieldNumber},
		{"x2", fieldNumber}, {"y2", fieldNumber},
		{"text", fieldString},
		{"source", fieldEndpoint}, {"target", fieldEndpoint},
	},
	TypeText: {
		{"x", fieldNumber}, {"y", fieldNumber},
		{"text", fieldString},
	},
	TypeTree: {
		{"root", fieldString}, {"items", fieldItems},
	},
}

// ValidateDefined fails when the value is absent.
func ValidateDefined(v any, name string) error {
	if v == nil {
		return NewValidationError("%s is not defined", name)
	}
	return nil
}

// ValidateCoordinate fails unless the value is a number.
func ValidateCoordinate(v any, name string) error {
	if _, ok := v.(float64); !ok {
		return NewValidationError("%s must be a number", name)
	}
	return nil
}

// ValidateString fails unless the value is a string.
func ValidateString(v any, name string) error {
	if _, ok := v.(string); !ok {
		return NewValidationError("%s must be a string", name)
	}
	return nil
}

// ValidateElementType fails unless the value names one of the five
// element variants.
func ValidateElementType(v any) error {
	s, ok := v.(string)
	if ok {
		switch ElementType(s) {
		case TypeRectangle, TypeDiamond, TypeArrow, TypeText, TypeTree:
			return nil
		}
	}
	return NewValidationError("unknown element type: %v", v)
}

// ValidateElement checks a single element value against its variant's
// field set. Violations are reported in the fixed precedence
// missing-required-key, wrong-type, extra-key, value-range.
func ValidateElement(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return NewValidationError("element must be an object")
	}

	idv, ok := obj["id"]
	if !ok {
		return NewValidationError(`element is missing required field "id"`)
	}
	if err := ValidateString(idv, "element id"); err != nil {
		return err
	}
	id := idv.(string)

	tv, ok := obj["type"]
	if !ok {
		return NewValidationError("element %q is missing required field %q", id, "type")
	}
	if err := ValidateElementType(tv); err != nil {
		return err
	}
	typ := ElementType(tv.(string))
	rules := elementFields[typ]

	for _, rule := range rules {
		if _, ok := obj[rule.name]; !ok {
			return NewValidationError("element %q is missing required field %q", id, rule.name)
		}
	}

	for _, rule := range rules {
		name := rule.name + " of element " + quote(id)
		fv := obj[rule.name]
		switch rule.kind {
		case fieldNumber:
			if err := ValidateCoordinate(fv, name); err != nil {
				return err
			}
		case fieldString:
			if err := ValidateString(fv, name); err != nil {
				return err
			}
		case fieldEndpoint:
			if fv != nil {
				if _, ok := fv.(string); !ok {
					return NewValidationError("%s must be an element id or null", name)
				}
			}
		case fieldItems:
			if err := validateTreeItems(fv, id); err != nil {
				return err
			}
		}
	}

	allowed := map[string]bool{"id": true, "type": true}
	for _, rule := range rules {
		allowed[rule.name] = true
	}
	for _, key := range sortedKeys(obj) {
		if !allowed[key] {
			return NewValidationError("unexpected field %q on element %q", key, id)
		}
	}

	if typ == TypeRectangle || typ == TypeDiamond {
		for _, dim := range []string{"width", "height"} {
			if math.Abs(obj[dim].(float64)) < MinElementSize {
				return NewValidationError("%s of element %q must be at least %d units", dim, id, MinElementSize)
			}
		}
	}
	return nil
}

func validateTreeItems(v any, id string) error {
	items, ok := v.([]any)
	if !ok {
		return NewValidationError("items of element %q must be an array", id)
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return NewValidationError("tree item of element %q must be an object", id)
		}
		for _, key := range []string{"parent", "element"} {
			fv, ok := obj[key]
			if !ok {
				return NewValidationError("tree item of element %q is missing required field %q", id, key)
			}
			if err := ValidateString(fv, key+" of tree item of element "+quote(id)); err != nil {
				return err
			}
		}
		for _, key := range sortedKeys(obj) {
			if key != "parent" && key != "element" {
				return NewValidationError("unexpected field %q on tree item of element %q", key, id)
			}
		}
	}
	return nil
}

// ValidateElements checks the element map: it must be an object, every
// entry's id must equal its key, every element must be valid, and every
// tree element must form a valid structure over diamond elements.
func ValidateElements(v any) error {
	if err := ValidateDefined(v, "elements"); err != nil {
		return err
	}
	if _, ok := v.([]any); ok {
		return NewValidationError("elements must be an object, not an array")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return NewValidationError("elements must be an object")
	}

	keys := sortedKeys(obj)
	for _, key := range keys {
		if err := ValidateElement(obj[key]); err != nil {
			return err
		}
		el := obj[key].(map[string]any)
		if el["id"] != key {
			return NewValidationError("element key %q does not match element id %q", key, el["id"])
		}
	}

	for _, key := range keys {
		el := obj[key].(map[string]any)
		if ElementType(el["type"].(string)) != TypeTree {
			continue
		}
		if !validTreeStructure(obj, el) {
			return NewValidationError("invalid tree structure")
		}
	}
	return nil
}

// ValidatePrefixes checks the prefix map shape.
func ValidatePrefixes(v any) error {
	if err := ValidateDefined(v, "prefixes"); err != nil {
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return NewValidationError("prefixes must be an object")
	}
	for _, key := range sortedKeys(obj) {
		if _, ok := obj[key].(string); !ok {
			return NewValidationError("prefix %q must be a string", key)
		}
	}
	return nil
}

// ValidateDomain checks the domain label.
func ValidateDomain(v any) error {
	if err := ValidateDefined(v, "domain"); err != nil {
		return err
	}
	return ValidateString(v, "domain")
}

// ValidateScene checks a pan/zoom transform value: exactly the numeric
// fields x, y and k.
func ValidateScene(v any) error {
	if err := ValidateDefined(v, "scene"); err != nil {
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return NewValidationError("scene must be an object")
	}
	for _, key := range []string{"x", "y", "k"} {
		fv, ok := obj[key]
		if !ok {
			return NewValidationError("scene is missing required field %q", key)
		}
		if err := ValidateCoordinate(fv, key+" of scene"); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(obj) {
		if key != "x" && key != "y" && key != "k" {
			return NewValidationError("unexpected field %q on scene", key)
		}
	}
	return nil
}

// ValidateDocument checks the full document shape and fails on any
// unexpected top-level key.
func ValidateDocument(v any) error {
	if err := ValidateDefined(v, "document"); err != nil {
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return NewValidationError("document must be an object")
	}
	for _, key := range []string{"prefixes", "domain", "elements", "rawStatements"} {
		if _, ok := obj[key]; !ok {
			return NewValidationError("document is missing required field %q", key)
		}
	}
	if err := ValidatePrefixes(obj["prefixes"]); err != nil {
		return err
	}
	if err := ValidateDomain(obj["domain"]); err != nil {
		return err
	}
	if err := ValidateElements(obj["elements"]); err != nil {
		return err
	}
	if err := ValidateString(obj["rawStatements"], "rawStatements"); err != nil {
		return err
	}
	for _, key := range sortedKeys(obj) {
		switch key {
		case "prefixes", "domain", "elements", "rawStatements":
		default:
			return NewValidationError("unexpected field %q on document", key)
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quote(s string) string { return `"` + s + `"` }
