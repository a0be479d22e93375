// Package canonical produces the canonical JSON encoding of a document:
// every object's keys sorted by code-point order, compact separators,
// no HTML escaping. The encoding is the externally persisted value and
// the single source of truth for equality and change detection, so it
// must be idempotent and invariant under key insertion order.
package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Encode returns the canonical encoding of any JSON-representable
// value. Typed values are first flattened through their JSON form, so
// a diagram.Document and its raw map decode canonicalize identically.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}
	var buf bytes.Buffer
	if err := writeValue(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeString parses a JSON string and returns its canonical
// encoding. EncodeString(EncodeString(s)) == EncodeString(s) for every
// valid input.
func EncodeString(s string) (string, error) {
	var raw any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return "", fmt.Errorf("canonicalize: %w", err)
	}
	var buf bytes.Buffer
	if err := writeValue(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			if err := writeValue(buf, v[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case string:
		writeString(buf, v)
	case nil:
		buf.WriteString("null")
	default:
		// Numbers and booleans re-encode through the standard library.
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("canonicalize: %w", err)
		}
		buf.Write(data)
	}
	return nil
}

// writeString encodes without HTML escaping, so identifiers containing
// angle brackets stay readable.
func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encode appends a newline; strip it.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}
