package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdfio/bdf.go"
	"github.com/bdfio/bdf.go/stream"
)

func parseJSON(t *testing.T, input string) interface{} {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(input)))
	decoder.UseNumber()

	var v interface{}
	require.NoError(t, decoder.Decode(&v))

	return v
}

func encodeDecode(t *testing.T, schema, input string, order bdf.ByteOrder) string {
	t.Helper()

	types, err := ParseSchema(schema)
	require.NoError(t, err)
	require.Len(t, types, 1)

	buffer := stream.NewByteBuffer()
	s := bdf.NewSerializer(buffer, order)
	require.NoError(t, encodeValue(s, types[0], parseJSON(t, input)))
	require.NoError(t, s.Err())

	d := bdf.NewDeserializer(buffer.Reader(), order)
	decoded, err := decodeValue(d, types[0])
	require.NoError(t, err)
	require.NoError(t, d.ConsumedAll().Err())

	out, err := json.Marshal(decoded)
	require.NoError(t, err)

	return string(out)
}

func TestCodec_ScalarRoundTrip(t *testing.T) {
	tests := []struct {
		schema string
		input  string
	}{
		{"u8", "255"},
		{"u64", "18446744073709551615"},
		{"i32", "-2147483648"},
		{"f64", "1.5"},
		{"bool", "true"},
		{"string", `"hello"`},
	}
	for _, tt := range tests {
		for _, order := range []bdf.ByteOrder{bdf.NativeOrder, bdf.LittleEndian, bdf.BigEndian} {
			require.JSONEq(t, tt.input, encodeDecode(t, tt.schema, tt.input, order), "schema %s", tt.schema)
		}
	}
}

func TestCodec_NonFiniteFloats(t *testing.T) {
	require.JSONEq(t, `"NaN"`, encodeDecode(t, "f64", `"NaN"`, bdf.LittleEndian))
	require.JSONEq(t, `"+Inf"`, encodeDecode(t, "f32", `"Inf"`, bdf.BigEndian))
	require.JSONEq(t, `"-Inf"`, encodeDecode(t, "f64", `"-Inf"`, bdf.NativeOrder))
}

func TestCodec_CompositeRoundTrip(t *testing.T) {
	schema := "list<map<string,pair<i32,i32>>>"
	input := `[{"max":[2147483647,-2147483648],"origin":[0,0]},{},{"single":[-7,7]}]`

	for _, order := range []bdf.ByteOrder{bdf.LittleEndian, bdf.BigEndian} {
		require.JSONEq(t, input, encodeDecode(t, schema, input, order))
	}
}

func TestCodec_MapEncodesInKeyOrder(t *testing.T) {
	types, err := ParseSchema("map<u8,u8>")
	require.NoError(t, err)

	buffer := stream.NewByteBuffer()
	s := bdf.NewSerializer(buffer, bdf.LittleEndian)
	require.NoError(t, encodeValue(s, types[0], parseJSON(t, `{"3":30,"1":10,"2":20}`)))

	expected := append([]byte{3, 0, 0, 0, 0, 0, 0, 0}, 1, 10, 2, 20, 3, 30)
	require.Equal(t, expected, buffer.Bytes())
}

func TestCodec_DecodePreservesWireKeyOrder(t *testing.T) {
	types, err := ParseSchema("map<string,u8>")
	require.NoError(t, err)

	buffer := stream.NewByteBuffer()
	s := bdf.NewSerializer(buffer, bdf.LittleEndian)
	s.WriteLen(2).
		WriteString("zebra").WriteUint8(1).
		WriteString("ant").WriteUint8(2)
	require.NoError(t, s.Err())

	d := bdf.NewDeserializer(buffer.Reader(), bdf.LittleEndian)
	decoded, err := decodeValue(d, types[0])
	require.NoError(t, err)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	require.Equal(t, `{"zebra":1,"ant":2}`, string(out))
}

func TestCodec_TypeMismatch(t *testing.T) {
	types, err := ParseSchema("u8")
	require.NoError(t, err)

	s := bdf.NewSerializer(stream.NewByteBuffer(), bdf.LittleEndian)
	require.Error(t, encodeValue(s, types[0], parseJSON(t, `"not a number"`)))
	require.Error(t, encodeValue(s, types[0], parseJSON(t, `256`)))
	require.Error(t, encodeValue(s, types[0], parseJSON(t, `-1`)))
}

func TestCodec_TimeRoundTrip(t *testing.T) {
	input := `"2024-05-01T10:30:00.000000001Z"`
	require.JSONEq(t, input, encodeDecode(t, "time", input, bdf.BigEndian))
}
