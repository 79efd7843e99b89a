// bdfdump inspects and produces BDF-encoded binary data.
//
// Usage:
//
//	bdfdump decode --schema 'u32,string,map<string,pair<i32,i32>>' --order little --in data.bin
//	bdfdump encode --schema 'list<u16>' --order big --in values.json --out data.bin
//
// decode reads binary data and prints it as JSON per the schema; encode does
// the reverse. The schema and byte order must match the ones the data was
// produced with, as the wire format is not self-describing.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/mr-tron/base58"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/bdfio/bdf.go"
	"github.com/bdfio/bdf.go/lo"
	"github.com/bdfio/bdf.go/stream"
)

func main() {
	flags := flag.NewFlagSet("bdfdump", flag.ContinueOnError)
	flags.String("schema", "", "value schema, e.g. 'u32,string,list<map<string,pair<i32,i32>>>'")
	flags.String("order", "native", "byte order: native, little or big")
	flags.String("in", "", "input file (default: stdin)")
	flags.String("out", "", "output file (default: stdout)")
	flags.String("format", "raw", "binary representation: raw, hex or base58")
	flags.String("config", "", "optional YAML config file with flag defaults")
	flags.Int("max-alloc", bdf.DefaultMaxAllocation, "allocation limit for decoded length prefixes")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bdfdump decode|encode [flags]\n\n%s", flags.FlagUsages())
	}

	logger := newLogger()
	defer func() {
		_ = logger.Sync()
	}()

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal("invalid flags", zap.Error(err))
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		logger.Fatal("unable to load configuration", zap.Error(err))
	}

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}
	mode := flags.Arg(0)

	schema, err := ParseSchema(cfg.String("schema"))
	if err != nil {
		logger.Fatal("invalid schema", zap.Error(err))
	}

	order, err := bdf.ParseByteOrder(cfg.String("order"))
	if err != nil {
		logger.Fatal("invalid byte order", zap.Error(err))
	}

	input, err := readInput(cfg.String("in"))
	if err != nil {
		logger.Fatal("unable to read input", zap.Error(err))
	}

	var output []byte
	switch mode {
	case "decode":
		output, err = runDecode(logger, cfg, schema, order, input)
	case "encode":
		output, err = runEncode(cfg, schema, order, input)
	default:
		logger.Fatal("unknown mode", zap.String("mode", mode))
	}
	if err != nil {
		logger.Fatal(mode+" failed", zap.Error(err))
	}

	if err := writeOutput(cfg.String("out"), output); err != nil {
		logger.Fatal("unable to write output", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

// loadConfig layers the optional YAML config file under the command line
// flags; explicitly set flags always win.
func loadConfig(flags *flag.FlagSet) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"order":     "native",
		"format":    "raw",
		"max-alloc": bdf.DefaultMaxAllocation,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "unable to load defaults")
	}

	if configPath, _ := flags.GetString("config"); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "unable to load config file %s", configPath)
		}
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, errors.Wrap(err, "unable to load flags")
	}

	return k, nil
}

func runDecode(logger *zap.Logger, cfg *koanf.Koanf, schema []*Type, order bdf.ByteOrder, input []byte) ([]byte, error) {
	data, err := unformat(cfg.String("format"), input)
	if err != nil {
		return nil, err
	}

	reader := stream.NewByteReader(data)
	d := bdf.NewDeserializer(reader, order, bdf.WithMaxAllocation(cfg.Int("max-alloc")))

	values := make([]interface{}, 0, len(schema))
	for _, t := range schema {
		v, err := decodeValue(d, t)
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", d.Consumed())
		}
		values = append(values, v)
	}

	if left := reader.Len(); left > 0 {
		logger.Warn("trailing bytes after decoding", zap.Int("count", left))
	}

	var result interface{} = values
	if len(values) == 1 {
		result = values[0]
	}

	return json.MarshalIndent(result, "", "  ")
}

func runEncode(cfg *koanf.Koanf, schema []*Type, order bdf.ByteOrder, input []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(input))
	decoder.UseNumber()

	var parsed interface{}
	if err := decoder.Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "invalid JSON input")
	}

	values := []interface{}{parsed}
	if len(schema) > 1 {
		xs, ok := parsed.([]interface{})
		if !ok || len(xs) != len(schema) {
			return nil, errors.Errorf("schema lists %d types, input must be an array of that length", len(schema))
		}
		values = xs
	}

	buffer := stream.NewByteBuffer()
	s := bdf.NewSerializer(buffer, order)
	for i, t := range schema {
		if err := encodeValue(s, t, values[i]); err != nil {
			return nil, errors.Wrapf(err, "value %d (%s)", i, t)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return format(cfg.String("format"), buffer.Bytes())
}

func unformat(name string, input []byte) ([]byte, error) {
	switch name {
	case "raw":
		return input, nil
	case "hex":
		return hex.DecodeString(strings.TrimSpace(string(input)))
	case "base58":
		return base58.Decode(strings.TrimSpace(string(input)))
	default:
		return nil, errors.Errorf("unknown format %q", name)
	}
}

func format(name string, data []byte) ([]byte, error) {
	switch name {
	case "raw":
		return data, nil
	case "hex":
		return []byte(hex.EncodeToString(data) + "\n"), nil
	case "base58":
		return []byte(base58.Encode(data) + "\n"), nil
	default:
		return nil, errors.Errorf("unknown format %q", name)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		return lo.Return2(os.Stdout.Write(data))
	}

	return os.WriteFile(path, data, 0o644)
}
