package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsketch/label"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want label.Token
		ok   bool
	}{
		{
			name: "bare qualified name",
			text: "xsd:string",
			want: label.Token{Name: "xsd:string"},
			ok:   true,
		},
		{
			name: "direct class marker",
			text: "test:Movie (DC)",
			want: label.Token{Name: "test:Movie", DirectClass: true},
			ok:   true,
		},
		{
			name: "bounded cardinality",
			text: "test:title (1..1)",
			want: label.Token{Name: "test:title", HasCardinality: true, Min: 1, Max: 1},
			ok:   true,
		},
		{
			name: "unbounded cardinality",
			text: "ns:rel (1..n)",
			want: label.Token{Name: "ns:rel", HasCardinality: true, Min: 1, Max: label.Unbounded},
			ok:   true,
		},
		{
			name: "cardinality with primary key index",
			text: "test:title (1..1 PK1)",
			want: label.Token{Name: "test:title", HasCardinality: true, Min: 1, Max: 1, PrimaryKey: 1},
			ok:   true,
		},
		{
			name: "zero minimum",
			text: "ns:opt (0..3)",
			want: label.Token{Name: "ns:opt", HasCardinality: true, Min: 0, Max: 3},
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			text: "  test:Movie (DC)  ",
			want: label.Token{Name: "test:Movie", DirectClass: true},
			ok:   true,
		},
		{
			name: "unrecognized marker ignored",
			text: "test:Movie (what)",
			want: label.Token{Name: "test:Movie"},
			ok:   true,
		},
		{
			name: "trailing garbage after marker ignored",
			text: "test:title (1..1 PK1) draft",
			want: label.Token{Name: "test:title", HasCardinality: true, Min: 1, Max: 1, PrimaryKey: 1},
			ok:   true,
		},
		{
			name: "no qualified name",
			text: "just a note",
			ok:   false,
		},
		{
			name: "empty",
			text: "",
			ok:   false,
		},
		{
			name: "missing local name",
			text: "test:",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := label.Parse(tt.text)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, tok)
			}
		})
	}
}

func TestParsePrimaryKeyRequiresCardinality(t *testing.T) {
	// PK only appears after a cardinality range; on its own it is
	// unrecognized marker content.
	tok, ok := label.Parse("test:title (PK1)")
	require.True(t, ok)
	assert.False(t, tok.HasCardinality)
	assert.Zero(t, tok.PrimaryKey)
}
