package diagram_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsketch/diagram"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

func validDocument() map[string]any {
	return map[string]any{
		"prefixes": map[string]any{
			"test": "https://example.org/test#",
		},
		"domain": "test",
		"elements": map[string]any{
			"d1": map[string]any{
				"id": "d1", "type": "diamond",
				"x": 10.0, "y": 10.0, "width": 120.0, "height": 80.0,
				"text": "test:Movie (DC)",
			},
			"r1": map[string]any{
				"id": "r1", "type": "rectangle",
				"x": 300.0, "y": 20.0, "width": 100.0, "height": 60.0,
				"text": "xsd:string",
			},
			"a1": map[string]any{
				"id": "a1", "type": "arrow",
				"x1": 130.0, "y1": 50.0, "x2": 300.0, "y2": 50.0,
				"text": "test:title (1..1 PK1)", "source": "d1", "target": "r1",
			},
		},
		"rawStatements": "",
	}
}

func TestValidateDocumentAccepts(t *testing.T) {
	assert.NoError(t, diagram.ValidateDocument(validDocument()))
}

func TestValidateDocumentViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		message string
	}{
		{
			name:    "missing domain",
			mutate:  func(doc map[string]any) { delete(doc, "domain") },
			message: `document is missing required field "domain"`,
		},
		{
			name:    "domain not a string",
			mutate:  func(doc map[string]any) { doc["domain"] = 7.0 },
			message: "domain must be a string",
		},
		{
			name:    "unexpected top-level key",
			mutate:  func(doc map[string]any) { doc["scene"] = map[string]any{} },
			message: `unexpected field "scene" on document`,
		},
		{
			name:    "elements as array",
			mutate:  func(doc map[string]any) { doc["elements"] = []any{} },
			message: "elements must be an object, not an array",
		},
		{
			name: "prefix not a string",
			mutate: func(doc map[string]any) {
				doc["prefixes"].(map[string]any)["bad"] = 1.0
			},
			message: `prefix "bad" must be a string`,
		},
		{
			name: "missing element field",
			mutate: func(doc map[string]any) {
				delete(element(doc, "r1"), "width")
			},
			message: `element "r1" is missing required field "width"`,
		},
		{
			name: "wrong field type",
			mutate: func(doc map[string]any) {
				element(doc, "r1")["width"] = "wide"
			},
			message: `width of element "r1" must be a number`,
		},
		{
			name: "unexpected element field",
			mutate: func(doc map[string]any) {
				element(doc, "r1")["angle"] = 0.0
			},
			message: `unexpected field "angle" on element "r1"`,
		},
		{
			name: "undersized rectangle",
			mutate: func(doc map[string]any) {
				element(doc, "r1")["height"] = 10.0
			},
			message: `height of element "r1" must be at least 24 units`,
		},
		{
			name: "unknown element type",
			mutate: func(doc map[string]any) {
				element(doc, "r1")["type"] = "blob"
			},
			message: "unknown element type: blob",
		},
		{
			name: "key id mismatch",
			mutate: func(doc map[string]any) {
				element(doc, "r1")["id"] = "other"
			},
			message: `element key "r1" does not match element id "other"`,
		},
		{
			name: "arrow endpoint wrong type",
			mutate: func(doc map[string]any) {
				element(doc, "a1")["source"] = 4.0
			},
			message: `source of element "a1" must be an element id or null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			err := diagram.ValidateDocument(doc)
			require.Error(t, err)
			var verr *diagram.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

// Missing required fields are reported before wrong types, wrong types
// before extra keys, so the first violation is stable however many
// problems an element has.
func TestValidatePrecedence(t *testing.T) {
	doc := validDocument()
	el := element(doc, "r1")
	delete(el, "x")
	el["width"] = "wide"
	el["angle"] = 0.0

	err := diagram.ValidateDocument(doc)
	require.Error(t, err)
	assert.EqualError(t, err, `element "r1" is missing required field "x"`)
}

func TestValidateScene(t *testing.T) {
	assert.NoError(t, diagram.ValidateScene(decode(t, `{"x":0,"y":0,"k":1}`)))
	assert.EqualError(t, diagram.ValidateScene(decode(t, `{"x":0,"y":0}`)),
		`scene is missing required field "k"`)
	assert.EqualError(t, diagram.ValidateScene(decode(t, `{"x":0,"y":0,"k":"big"}`)),
		"k of scene must be a number")
	assert.EqualError(t, diagram.ValidateScene(decode(t, `{"x":0,"y":0,"k":1,"w":2}`)),
		`unexpected field "w" on scene`)
	assert.EqualError(t, diagram.ValidateScene(nil), "scene is not defined")
}

func TestValidateDefined(t *testing.T) {
	assert.NoError(t, diagram.ValidateDefined("x", "value"))
	assert.EqualError(t, diagram.ValidateDefined(nil, "value"), "value is not defined")
}

func element(doc map[string]any, id string) map[string]any {
	return doc["elements"].(map[string]any)[id].(map[string]any)
}
