package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsketch/diagram"
)

func diamondElement(id string) map[string]any {
	return map[string]any{
		"id": id, "type": "diamond",
		"x": 0.0, "y": 0.0, "width": 120.0, "height": 80.0,
		"text": "test:" + id,
	}
}

func treeDocument(root string, items ...[2]string) map[string]any {
	elements := map[string]any{
		"a": diamondElement("a"),
		"b": diamondElement("b"),
		"c": diamondElement("c"),
	}
	treeItems := make([]any, 0, len(items))
	for _, item := range items {
		treeItems = append(treeItems, map[string]any{
			"parent": item[0], "element": item[1],
		})
	}
	elements["t1"] = map[string]any{
		"id": "t1", "type": "tree", "root": root, "items": treeItems,
	}
	return map[string]any{
		"prefixes":      map[string]any{"test": "https://example.org/test#"},
		"domain":        "test",
		"elements":      elements,
		"rawStatements": "",
	}
}

func TestValidTree(t *testing.T) {
	doc := treeDocument("a", [2]string{"a", "b"}, [2]string{"a", "c"})
	assert.NoError(t, diagram.ValidateDocument(doc))
}

func TestInvalidTreeStructure(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{
			name: "cycle back to ancestor",
			doc:  treeDocument("a", [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}),
		},
		{
			name: "self loop",
			doc:  treeDocument("a", [2]string{"a", "a"}),
		},
		{
			name: "missing root reference",
			doc:  treeDocument("zz", [2]string{"a", "b"}),
		},
		{
			name: "missing item reference",
			doc:  treeDocument("a", [2]string{"a", "zz"}),
		},
		{
			name: "unreachable island",
			doc:  treeDocument("a", [2]string{"b", "c"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := diagram.ValidateDocument(tt.doc)
			require.Error(t, err)
			// One generic message for every structural sub-cause.
			assert.EqualError(t, err, "invalid tree structure")
		})
	}
}

func TestTreeReferencingNonDiamond(t *testing.T) {
	doc := treeDocument("a", [2]string{"a", "b"})
	doc["elements"].(map[string]any)["r9"] = map[string]any{
		"id": "r9", "type": "rectangle",
		"x": 0.0, "y": 0.0, "width": 100.0, "height": 60.0,
		"text": "xsd:string",
	}
	items := doc["elements"].(map[string]any)["t1"].(map[string]any)["items"].([]any)
	items = append(items, map[string]any{"parent": "a", "element": "r9"})
	doc["elements"].(map[string]any)["t1"].(map[string]any)["items"] = items

	err := diagram.ValidateDocument(doc)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid tree structure")
}

func TestTreeRejectsPositionalFields(t *testing.T) {
	doc := treeDocument("a", [2]string{"a", "b"})
	doc["elements"].(map[string]any)["t1"].(map[string]any)["x"] = 0.0

	err := diagram.ValidateDocument(doc)
	require.Error(t, err)
	assert.EqualError(t, err, `unexpected field "x" on element "t1"`)
}
