package statement

import (
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/semsketch/diagram"
	"github.com/c360studio/semsketch/vocabulary/upper"
)

// xsdInteger is the only typed literal the flat format emits; the
// parser folds it back into an Integer so round-tripped output
// deduplicates against generated statements.
const xsdInteger = upper.XSDNamespace + "integer"

// ParseRaw parses user-authored raw statement text, one statement per
// line: an absolute-identifier subject, an absolute-identifier
// predicate, and an object that is an absolute identifier, a quoted
// string literal, a bare integer, or a parenthesized identifier list.
// Each identifier compacts to a qualified name using the longest
// matching namespace in prefixes. Identifiers with no matching prefix
// pass through unexpanded in <iri> form.
func ParseRaw(text string, prefixes map[string]string) ([]Statement, error) {
	return parseRaw(text, prefixes, false)
}

// ParseRawStrict is ParseRaw, except that an identifier with no
// matching prefix is an error.
func ParseRawStrict(text string, prefixes map[string]string) ([]Statement, error) {
	return parseRaw(text, prefixes, true)
}

func parseRaw(text string, prefixes map[string]string, strict bool) ([]Statement, error) {
	var statements []Statement
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		st, err := parseLine(line, prefixes, strict)
		if err != nil {
			return nil, diagram.NewValidationError("invalid raw statement on line %d: %s", i+1, err.Error())
		}
		statements = append(statements, st)
	}
	return statements, nil
}

func parseLine(line string, prefixes map[string]string, strict bool) (Statement, error) {
	tokens, err := lexLine(line)
	if err != nil {
		return Statement{}, err
	}
	// Optional terminating dot.
	if n := len(tokens); n > 0 && tokens[n-1].kind == tokenDot {
		tokens = tokens[:n-1]
	}
	if len(tokens) < 3 {
		return Statement{}, diagram.NewValidationError("expected subject, predicate and object")
	}

	subject, err := compactToken(tokens[0], prefixes, strict)
	if err != nil {
		return Statement{}, err
	}
	predicate, err := compactToken(tokens[1], prefixes, strict)
	if err != nil {
		return Statement{}, err
	}
	object, rest, err := parseObject(tokens[2:], prefixes, strict)
	if err != nil {
		return Statement{}, err
	}
	if len(rest) > 0 {
		return Statement{}, diagram.NewValidationError("unexpected token %q after object", rest[0].text)
	}
	return Statement{Subject: subject, Predicate: predicate, Object: object}, nil
}

func parseObject(tokens []token, prefixes map[string]string, strict bool) (Object, []token, error) {
	switch tokens[0].kind {
	case tokenIRI:
		name, err := compactToken(tokens[0], prefixes, strict)
		if err != nil {
			return nil, nil, err
		}
		return Reference(name), tokens[1:], nil
	case tokenLiteral:
		return parseLiteral(tokens)
	case tokenNumber:
		n, err := strconv.Atoi(tokens[0].text)
		if err != nil {
			return nil, nil, diagram.NewValidationError("invalid number %q", tokens[0].text)
		}
		return Integer(n), tokens[1:], nil
	case tokenOpen:
		var names List
		rest := tokens[1:]
		for len(rest) > 0 && rest[0].kind == tokenIRI {
			name, err := compactToken(rest[0], prefixes, strict)
			if err != nil {
				return nil, nil, err
			}
			names = append(names, name)
			rest = rest[1:]
		}
		if len(rest) == 0 || rest[0].kind != tokenClose {
			return nil, nil, diagram.NewValidationError("unterminated identifier list")
		}
		return names, rest[1:], nil
	default:
		return nil, nil, diagram.NewValidationError("invalid object token %q", tokens[0].text)
	}
}

func parseLiteral(tokens []token) (Object, []token, error) {
	value := tokens[0].text
	rest := tokens[1:]
	if len(rest) > 0 && rest[0].kind == tokenDatatype {
		datatype := rest[0].text
		rest = rest[1:]
		if datatype == xsdInteger {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, nil, diagram.NewValidationError("invalid integer literal %q", value)
			}
			return Integer(n), rest, nil
		}
	}
	return Literal(value), rest, nil
}

// compactToken expands nothing; it compacts a full identifier to the
// qualified name of the longest matching prefix. Ties break toward the
// lexicographically smallest prefix label.
func compactToken(t token, prefixes map[string]string, strict bool) (string, error) {
	if t.kind != tokenIRI {
		return "", diagram.NewValidationError("expected identifier, got %q", t.text)
	}
	iri := t.text
	best := ""
	bestLen := 0
	for _, lbl := range sortedPrefixLabels(prefixes) {
		ns := prefixes[lbl]
		if ns != "" && strings.HasPrefix(iri, ns) && len(ns) > bestLen {
			best = lbl
			bestLen = len(ns)
		}
	}
	if bestLen == 0 {
		if strict {
			return "", diagram.NewValidationError("no prefix matches identifier %q", iri)
		}
		return "<" + iri + ">", nil
	}
	return best + ":" + iri[bestLen:], nil
}

func sortedPrefixLabels(prefixes map[string]string) []string {
	labels := make([]string, 0, len(prefixes))
	for l := range prefixes {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

type tokenKind int

const (
	tokenIRI tokenKind = iota
	tokenLiteral
	tokenDatatype
	tokenNumber
	tokenOpen
	tokenClose
	tokenDot
)

type token struct {
	kind tokenKind
	text string
}

func lexLine(line string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(line) {
		switch c := line[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '<':
			end := strings.IndexByte(line[i:], '>')
			if end < 0 {
				return nil, diagram.NewValidationError("unterminated identifier")
			}
			tokens = append(tokens, token{tokenIRI, line[i+1 : i+end]})
			i += end + 1
		case c == '"':
			value, n, err := lexQuoted(line[i:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{tokenLiteral, value})
			i += n
			// Optional ^^<datatype> suffix.
			if strings.HasPrefix(line[i:], "^^<") {
				end := strings.IndexByte(line[i+3:], '>')
				if end < 0 {
					return nil, diagram.NewValidationError("unterminated datatype identifier")
				}
				tokens = append(tokens, token{tokenDatatype, line[i+3 : i+3+end]})
				i += 3 + end + 1
			}
		case c == '(':
			tokens = append(tokens, token{tokenOpen, "("})
			i++
		case c == ')':
			tokens = append(tokens, token{tokenClose, ")"})
			i++
		case c == '.':
			tokens = append(tokens, token{tokenDot, "."})
			i++
		case c == '-' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < len(line) && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			tokens = append(tokens, token{tokenNumber, line[i:j]})
			i = j
		default:
			return nil, diagram.NewValidationError("unexpected character %q", string(c))
		}
	}
	return tokens, nil
}

func lexQuoted(s string) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, diagram.NewValidationError("unterminated string literal")
			}
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, diagram.NewValidationError("unterminated string literal")
}
