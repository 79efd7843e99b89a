package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/orderedmap"

	"github.com/bdfio/bdf.go"
)

// decodeValue decodes one value of the given schema type from the
// deserializer into a JSON-marshalable representation. Maps come out as
// *orderedmap.OrderedMap so the wire's key order survives into the output.
func decodeValue(d *bdf.Deserializer, t *Type) (interface{}, error) {
	var v interface{}

	switch t.Kind {
	case KindU8:
		v = d.ReadUint8()
	case KindU16:
		v = d.ReadUint16()
	case KindU32:
		v = d.ReadUint32()
	case KindU64:
		v = d.ReadUint64()
	case KindI8:
		v = d.ReadInt8()
	case KindI16:
		v = d.ReadInt16()
	case KindI32:
		v = d.ReadInt32()
	case KindI64:
		v = d.ReadInt64()
	case KindF32:
		v = floatValue(float64(d.ReadFloat32()))
	case KindF64:
		v = floatValue(d.ReadFloat64())
	case KindBool:
		v = d.ReadBool()
	case KindString:
		v = d.ReadString()
	case KindTime:
		v = d.ReadTime().UTC().Format(time.RFC3339Nano)
	case KindPair:
		first, err := decodeValue(d, t.Key)
		if err != nil {
			return nil, err
		}
		second, err := decodeValue(d, t.Value)
		if err != nil {
			return nil, err
		}
		v = []interface{}{first, second}
	case KindList:
		n := d.ReadLen()
		if err := d.Err(); err != nil {
			return nil, err
		}
		xs := make([]interface{}, n)
		for i := range xs {
			x, err := decodeValue(d, t.Elem)
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		v = xs
	case KindMap:
		n := d.ReadLen()
		if err := d.Err(); err != nil {
			return nil, err
		}
		m := orderedmap.New()
		for i := 0; i < n; i++ {
			key, err := decodeValue(d, t.Key)
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(d, t.Value)
			if err != nil {
				return nil, err
			}
			m.Set(fmt.Sprint(key), value)
		}
		v = m
	}

	if err := d.Err(); err != nil {
		return nil, err
	}

	return v, nil
}

// encodeValue encodes one JSON-decoded value (json.Number for numbers) of
// the given schema type into the serializer.
func encodeValue(s *bdf.Serializer, t *Type, v interface{}) error {
	switch t.Kind {
	case KindU8, KindU16, KindU32, KindU64:
		u, err := asUint(v, t.Kind)
		if err != nil {
			return err
		}
		switch t.Kind {
		case KindU8:
			s.WriteUint8(uint8(u))
		case KindU16:
			s.WriteUint16(uint16(u))
		case KindU32:
			s.WriteUint32(uint32(u))
		default:
			s.WriteUint64(u)
		}
	case KindI8, KindI16, KindI32, KindI64:
		i, err := asInt(v, t.Kind)
		if err != nil {
			return err
		}
		switch t.Kind {
		case KindI8:
			s.WriteInt8(int8(i))
		case KindI16:
			s.WriteInt16(int16(i))
		case KindI32:
			s.WriteInt32(int32(i))
		default:
			s.WriteInt64(i)
		}
	case KindF32, KindF64:
		f, err := asFloat(v)
		if err != nil {
			return err
		}
		if t.Kind == KindF32 {
			s.WriteFloat32(float32(f))
		} else {
			s.WriteFloat64(f)
		}
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return errors.Errorf("expected bool, got %T", v)
		}
		s.WriteBool(b)
	case KindString:
		str, ok := v.(string)
		if !ok {
			return errors.Errorf("expected string, got %T", v)
		}
		s.WriteString(str)
	case KindTime:
		str, ok := v.(string)
		if !ok {
			return errors.Errorf("expected RFC 3339 string, got %T", v)
		}
		ts, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return errors.Wrap(err, "invalid time value")
		}
		s.WriteTime(ts)
	case KindPair:
		xs, ok := v.([]interface{})
		if !ok || len(xs) != 2 {
			return errors.Errorf("expected a 2-element array for pair, got %T", v)
		}
		if err := encodeValue(s, t.Key, xs[0]); err != nil {
			return err
		}

		return encodeValue(s, t.Value, xs[1])
	case KindList:
		xs, ok := v.([]interface{})
		if !ok {
			return errors.Errorf("expected an array for list, got %T", v)
		}
		s.WriteLen(len(xs))
		for _, x := range xs {
			if err := encodeValue(s, t.Elem, x); err != nil {
				return err
			}
		}
	case KindMap:
		m, ok := v.(map[string]interface{})
		if !ok {
			return errors.Errorf("expected an object for map, got %T", v)
		}
		s.WriteLen(len(m))
		keys, err := sortedMapKeys(m, t.Key)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := encodeValue(s, t.Key, k.parsed); err != nil {
				return err
			}
			if err := encodeValue(s, t.Value, m[k.raw]); err != nil {
				return err
			}
		}
	}

	return s.Err()
}

// mapKey carries a JSON object key together with its parsed form, so keys
// can be sorted in their decoded order rather than lexically.
type mapKey struct {
	raw    string
	parsed interface{}
	order  float64
}

// sortedMapKeys parses the object keys per the key schema type and returns
// them in ascending key order, matching the wire contract of the map codec.
func sortedMapKeys(m map[string]interface{}, keyType *Type) ([]mapKey, error) {
	keys := make([]mapKey, 0, len(m))
	for raw := range m {
		k := mapKey{raw: raw}
		switch keyType.Kind {
		case KindString:
			k.parsed = raw
		case KindBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid bool key %q", raw)
			}
			k.parsed = b
			if b {
				k.order = 1
			}
		case KindTime:
			ts, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid time key %q", raw)
			}
			k.parsed = raw
			k.order = float64(ts.UnixNano())
		default:
			k.parsed = json.Number(raw)
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid numeric key %q", raw)
			}
			k.order = f
		}
		keys = append(keys, k)
	}

	if keyType.Kind == KindString {
		sortKeysBy(keys, func(a, b mapKey) bool { return a.raw < b.raw })
	} else {
		sortKeysBy(keys, func(a, b mapKey) bool { return a.order < b.order })
	}

	return keys, nil
}

func sortKeysBy(keys []mapKey, less func(a, b mapKey) bool) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && less(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

func asUint(v interface{}, kind Kind) (uint64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, errors.Errorf("expected number, got %T", v)
	}
	u, err := strconv.ParseUint(num.String(), 10, bitSize(kind))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid unsigned value %q", num)
	}

	return u, nil
}

func asInt(v interface{}, kind Kind) (int64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, errors.Errorf("expected number, got %T", v)
	}
	i, err := strconv.ParseInt(num.String(), 10, bitSize(kind))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid signed value %q", num)
	}

	return i, nil
}

func asFloat(v interface{}) (float64, error) {
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Wrapf(err, "invalid float value %q", v)
		}

		return f, nil
	case string:
		// NaN and infinities are not representable in JSON
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Inf", "+Inf":
			return math.Inf(1), nil
		case "-Inf":
			return math.Inf(-1), nil
		}
	}

	return 0, errors.Errorf("expected number, got %T", v)
}

// floatValue renders non-finite floats as strings, since JSON has no
// representation for them; asFloat parses the same strings back.
func floatValue(f float64) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return f
	}
}

func bitSize(kind Kind) int {
	switch kind {
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32:
		return 32
	default:
		return 64
	}
}
