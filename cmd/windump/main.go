package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitfashion/fashiontools/bytewindow"
	"github.com/bitfashion/fashiontools/windump"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	kindName = flag.String("type", "int32", "kind of value to decode, one of int8..uint64, float32, float64")
	offset   = flag.Int("offset", 0, "byte offset in the file to start decoding at")
	length   = flag.Int("length", -1, "number of bytes to decode, -1 for everything after offset")
	stats    = flag.Bool("stats", false, "print a summary of the decoded values, integers only")
)

var logger = zap.New(zapcore.NewCore(
	zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}),
	zapcore.Lock(os.Stderr), zapcore.InfoLevel,
))

func printStats(records []windump.Record) {
	h, err := windump.Stats(records)
	if err != nil {
		fmt.Printf("no stats: %v\n", err)
		return
	}

	fmt.Printf(`
Count     = %v
Min       = %v
Max       = %v
Mean      = %.2f
P50       = %v
P90       = %v
P99       = %v
`, h.TotalCount(), h.Min(), h.Max(), h.Mean(),
		h.ValueAtQuantile(50), h.ValueAtQuantile(90), h.ValueAtQuantile(99))
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: windump [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	file := flag.Arg(0)

	kind, err := bytewindow.ParseKind(*kindName)
	if err != nil {
		logger.Fatal("bad -type", zap.Error(err))
	}

	m, err := bytewindow.OpenMapped(file, false)
	if err != nil {
		logger.Fatal("cannot map file", zap.String("file", file), zap.Error(err))
	}
	defer m.Close(false)

	l := *length
	if l < 0 {
		l = m.Len() - *offset
	}

	w, err := m.Slice(*offset, l)
	if err != nil {
		m.Close(false)
		logger.Fatal("bad range", zap.Int("offset", *offset), zap.Int("length", *length), zap.Error(err))
	}

	records, err := windump.Dump(w, kind)
	if err != nil {
		m.Close(false)
		logger.Fatal("cannot decode", zap.Error(err))
	}

	fmt.Printf(`
File      = %v
Size      = %v
Range     = [%v, %v)
Type      = %v
Values    = %v
Trailing  = %v

`, file, m.Size(), w.Base(), w.Base()+w.Len(), kind, len(records), w.Remaining())

	if err = windump.Print(os.Stdout, records); err != nil {
		m.Close(false)
		logger.Fatal("cannot print", zap.Error(err))
	}

	if *stats {
		printStats(records)
	}
}
