package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Text is an optional scalar rendered as text. Strings keep their value;
// numbers and booleans keep their literal spelling, so an id written as 7
// and one written as "7" both render as 7. Null and absent are the same.
type Text struct {
	value string
	valid bool
}

// NewText returns a present Text holding s.
func NewText(s string) Text { return Text{value: s, valid: true} }

// String returns the value, or "" when absent.
func (t Text) String() string { return t.value }

// Valid reports whether the field was present and non-null.
func (t Text) Valid() bool { return t.valid }

// Or returns the value, or def when the field is absent or empty.
func (t Text) Or(def string) string {
	if t.value == "" {
		return def
	}
	return t.value
}

func (t *Text) UnmarshalJSON(data []byte) error {
	lit, ok, err := jsonScalar(data)
	if err != nil {
		return err
	}
	*t = Text{value: lit, valid: ok}
	return nil
}

func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	lit, ok, err := yamlScalar(node)
	if err != nil {
		return err
	}
	*t = Text{value: lit, valid: ok}
	return nil
}

// Number is an optional numeric field that may arrive as a JSON number or
// as text. Raw keeps the original spelling for pass-through columns; Float
// coerces it for arithmetic.
type Number struct {
	raw   string
	valid bool
}

// NewNumber returns a present Number with the given raw spelling.
func NewNumber(raw string) Number { return Number{raw: raw, valid: true} }

// Raw returns the field exactly as written, or "" when absent.
func (n Number) Raw() string { return n.raw }

func (n Number) Valid() bool { return n.valid }

// Float coerces the raw value. Absent, empty or unparsable values are 0.
func (n Number) Float() float64 {
	s := strings.TrimSpace(n.raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int coerces the raw value and truncates toward zero.
func (n Number) Int() int64 {
	return int64(math.Trunc(n.Float()))
}

func (n *Number) UnmarshalJSON(data []byte) error {
	lit, ok, err := jsonScalar(data)
	if err != nil {
		return err
	}
	*n = Number{raw: lit, valid: ok}
	return nil
}

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	lit, ok, err := yamlScalar(node)
	if err != nil {
		return err
	}
	*n = Number{raw: lit, valid: ok}
	return nil
}

// jsonScalar returns the textual form of a JSON scalar. Objects and arrays
// are kept as compact JSON text.
func jsonScalar(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return "", false, err
		}
		return buf.String(), true, nil
	default:
		return string(data), true, nil
	}
}

// yamlScalar returns the textual form of a YAML scalar. Mappings and
// sequences are kept as compact JSON text, as jsonScalar does.
func yamlScalar(node *yaml.Node) (string, bool, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
		return yamlCompound(node)
	}
	if node.Tag == "!!null" {
		return "", false, nil
	}
	return node.Value, true, nil
}

func yamlCompound(node *yaml.Node) (string, bool, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return "", false, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return string(b), true, nil
}
