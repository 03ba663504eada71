package bitvec

import (
	"gopkg.in/yaml.v3"
)

var _ yaml.Marshaler = Bits{}
var _ yaml.Unmarshaler = (*Bits)(nil)
var _ yaml.Marshaler = XBits{}
var _ yaml.Unmarshaler = (*XBits)(nil)

// scalar returns the text of a YAML scalar node.
func scalar(node *yaml.Node) (text []byte, err error) {
	if node.Kind != yaml.ScalarNode {
		err = &ErrLiteral{Text: node.Value, Err: ErrLiteralSyntax}
		return
	}
	text = []byte(node.Value)
	return
}

// MarshalYAML encodes the exact sized literal of the value.
func (b Bits) MarshalYAML() (any, error) {
	return b.Literal(), nil
}

// UnmarshalYAML decodes a literal scalar.
func (b *Bits) UnmarshalYAML(node *yaml.Node) (err error) {
	text, err := scalar(node)
	if err != nil {
		return
	}
	return b.UnmarshalText(text)
}

// MarshalYAML encodes the exact sized literal of the value.
func (x XBits) MarshalYAML() (any, error) {
	return x.Literal()
}

// UnmarshalYAML decodes a literal scalar.
func (x *XBits) UnmarshalYAML(node *yaml.Node) (err error) {
	text, err := scalar(node)
	if err != nil {
		return
	}
	return x.UnmarshalText(text)
}
