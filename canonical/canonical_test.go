package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsketch/canonical"
	"github.com/c360studio/semsketch/diagram"
)

func TestEncodeSortsKeys(t *testing.T) {
	out, err := canonical.EncodeString(`{"b":1,"a":{"z":true,"y":[3,2,1]}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"y":[3,2,1],"z":true},"b":1}`, out)
}

func TestEncodeIdempotent(t *testing.T) {
	src := `{"domain":"test","prefixes":{"b":"https://b.example/","a":"https://a.example/"},"elements":{},"rawStatements":""}`
	once, err := canonical.EncodeString(src)
	require.NoError(t, err)
	twice, err := canonical.EncodeString(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

// Two documents with identical key/value pairs in different insertion
// order canonicalize to the same string.
func TestEncodeKeyOrderInvariance(t *testing.T) {
	a := `{"domain":"test","rawStatements":"","prefixes":{"x":"https://x.example/"},"elements":{}}`
	b := `{"elements":{},"prefixes":{"x":"https://x.example/"},"rawStatements":"","domain":"test"}`

	ca, err := canonical.EncodeString(a)
	require.NoError(t, err)
	cb, err := canonical.EncodeString(b)
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
}

func TestEncodeNoHTMLEscaping(t *testing.T) {
	out, err := canonical.EncodeString(`{"raw":"<https://a.example/x> & more"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"raw":"<https://a.example/x> & more"}`, out)
}

func TestEncodeTypedAndRawAgree(t *testing.T) {
	doc := diagram.Document{
		Prefixes:      map[string]string{"test": "https://example.org/test#"},
		Domain:        "test",
		Elements:      diagram.ElementMap{},
		RawStatements: "",
	}
	fromTyped, err := canonical.Encode(doc)
	require.NoError(t, err)

	fromRaw, err := canonical.EncodeString(
		`{"rawStatements":"","elements":{},"domain":"test","prefixes":{"test":"https://example.org/test#"}}`)
	require.NoError(t, err)

	assert.Equal(t, fromRaw, fromTyped)
}

// Round trip: parsing the canonical encoding reproduces the document.
func TestRoundTrip(t *testing.T) {
	src := `{
		"prefixes": {"test": "https://example.org/test#"},
		"domain": "test",
		"elements": {
			"d1": {"id": "d1", "type": "diamond", "x": 10, "y": 10, "width": 120, "height": 80, "text": "test:Movie (DC)"}
		},
		"rawStatements": ""
	}`
	doc, err := diagram.Parse([]byte(src))
	require.NoError(t, err)

	canon, err := canonical.Encode(doc)
	require.NoError(t, err)

	again, err := diagram.Parse([]byte(canon))
	require.NoError(t, err)
	assert.Equal(t, doc.Domain, again.Domain)
	assert.Equal(t, doc.Elements, again.Elements)

	canonAgain, err := canonical.Encode(again)
	require.NoError(t, err)
	assert.Equal(t, canon, canonAgain)
}
