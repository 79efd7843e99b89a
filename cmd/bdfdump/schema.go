package main

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind enumerates the value kinds the schema language can express.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
	KindString
	KindTime
	KindList
	KindMap
	KindPair
)

var scalarKinds = map[string]Kind{
	"u8":     KindU8,
	"u16":    KindU16,
	"u32":    KindU32,
	"u64":    KindU64,
	"i8":     KindI8,
	"i16":    KindI16,
	"i32":    KindI32,
	"i64":    KindI64,
	"f32":    KindF32,
	"f64":    KindF64,
	"bool":   KindBool,
	"string": KindString,
	"time":   KindTime,
}

// Type is a parsed schema node.
type Type struct {
	Kind  Kind
	Elem  *Type // list element
	Key   *Type // map key / pair first
	Value *Type // map value / pair second
}

// ParseSchema parses a comma-separated list of types, e.g.
// "u32,string,list<map<string,pair<i32,i32>>>". Whitespace is ignored.
func ParseSchema(input string) ([]*Type, error) {
	p := &schemaParser{input: stripSpaces(input)}
	if p.input == "" {
		return nil, errors.New("empty schema")
	}

	var types []*Type
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		if p.pos == len(p.input) {
			return types, nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
	}
}

type schemaParser struct {
	input string
	pos   int
}

func (p *schemaParser) parseType() (*Type, error) {
	name := p.readName()
	if name == "" {
		return nil, errors.Errorf("expected a type at offset %d", p.pos)
	}

	if kind, ok := scalarKinds[name]; ok {
		return &Type{Kind: kind}, nil
	}

	switch name {
	case "list":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}

		return &Type{Kind: KindList, Elem: elem}, nil
	case "map", "pair":
		kind := KindMap
		if name == "pair" {
			kind = KindPair
		}
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if kind == KindMap && key.Kind >= KindList {
			return nil, errors.New("map keys must be scalar types")
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}

		return &Type{Kind: kind, Key: key, Value: value}, nil
	default:
		return nil, errors.Errorf("unknown type %q", name)
	}
}

func (p *schemaParser) readName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}

	return p.input[start:p.pos]
}

func (p *schemaParser) expect(c byte) error {
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return errors.Errorf("expected %q at offset %d", string(c), p.pos)
	}
	p.pos++

	return nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}

		return r
	}, s)
}

// String renders the type back into schema syntax.
func (t *Type) String() string {
	switch t.Kind {
	case KindList:
		return "list<" + t.Elem.String() + ">"
	case KindMap:
		return "map<" + t.Key.String() + "," + t.Value.String() + ">"
	case KindPair:
		return "pair<" + t.Key.String() + "," + t.Value.String() + ">"
	default:
		for name, kind := range scalarKinds {
			if kind == t.Kind {
				return name
			}
		}

		return "unknown"
	}
}
