package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lars-frogner/impact-wire/codec"
	"github.com/lars-frogner/impact-wire/components"
	"github.com/lars-frogner/impact-wire/packet"
	"github.com/lars-frogner/impact-wire/schema"
	"github.com/lars-frogner/impact-wire/scripthost"
)

func main() {
	var (
		bufferFile  = flag.String("file", "", "Path to a construction buffer dump")
		scriptFile  = flag.String("script", "", "Path to a wasm setup script to run for its buffer")
		exportName  = flag.String("export", "setup", "Setup function to call in the script")
		multi       = flag.Bool("multi", false, "Treat the buffer as a multi-entity buffer")
		list        = flag.Bool("list", false, "List packet headers without decoding payloads")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *bufferFile == "" && *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <buffer.bin> [-multi] [-list]")
		fmt.Fprintln(os.Stderr, "       inspect -script <setup.wasm> [-export name] [-multi]")
		fmt.Fprintln(os.Stderr, "       inspect -file <buffer.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scripthost.SetLogger(log)
	}

	buf, source, err := loadBuffer(*bufferFile, *scriptFile, *exportName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(source, buf, *multi); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(source, buf, *multi, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadBuffer obtains the construction buffer to inspect, either from a dump
// file or by running a setup script and copying its buffer out.
func loadBuffer(bufferFile, scriptFile, exportName string) ([]byte, string, error) {
	if scriptFile == "" {
		data, err := os.ReadFile(bufferFile)
		if err != nil {
			return nil, "", fmt.Errorf("read file: %w", err)
		}
		return data, bufferFile, nil
	}

	ctx := context.Background()

	wasmBytes, err := os.ReadFile(scriptFile)
	if err != nil {
		return nil, "", fmt.Errorf("read script: %w", err)
	}

	host, err := scripthost.New(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create host: %w", err)
	}
	defer host.Close(ctx)

	script, err := host.LoadScript(ctx, wasmBytes)
	if err != nil {
		return nil, "", fmt.Errorf("load script: %w", err)
	}

	instance, err := script.Instantiate(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("instantiate script: %w", err)
	}
	defer instance.Close(ctx)

	buf, err := instance.BuildBuffer(ctx, exportName)
	if err != nil {
		return nil, "", fmt.Errorf("call %s: %w", exportName, err)
	}
	return buf, fmt.Sprintf("%s!%s", scriptFile, exportName), nil
}

type packetEntry struct {
	header  packet.Header
	payload []byte
	binding *schema.Binding
}

func (e packetEntry) typeName() string {
	if e.binding != nil {
		return e.binding.Schema().Name()
	}
	return "<unknown type>"
}

// readPackets walks the buffer and resolves each packet against the
// built-in component registry. Unknown types are kept with a nil binding so
// the caller can still show the raw header.
func readPackets(buf []byte, multi bool) ([]packetEntry, error) {
	reg := components.Registry()

	r := packet.NewReader(buf)
	if multi {
		r = packet.NewMultiReader(buf)
	}

	var entries []packetEntry
	for r.More() {
		h, payload, err := r.Next()
		if err != nil {
			return nil, err
		}
		b, _ := reg.LookupID(h.TypeID)
		entries = append(entries, packetEntry{header: h, payload: payload, binding: b})
	}
	return entries, nil
}

func run(source string, buf []byte, multi, listOnly bool) error {
	entries, err := readPackets(buf, multi)
	if err != nil {
		return fmt.Errorf("parse buffer: %w", err)
	}

	fmt.Printf("Buffer: %s\n", source)
	fmt.Printf("Bytes: %d\n", len(buf))
	fmt.Printf("Packets: %d\n\n", len(entries))

	for i, e := range entries {
		fmt.Printf("[%d] %s\n", i, e.typeName())
		fmt.Printf("    type ID %s, size %d, alignment %d, count %d\n",
			e.header.TypeID, e.header.Size, e.header.Alignment, e.header.Count)

		if listOnly || e.binding == nil {
			continue
		}
		if e.header.Size == 0 {
			fmt.Printf("    (marker, no payload)\n")
			continue
		}

		size := int(e.header.Size)
		for j := 0; j < int(e.header.Count); j++ {
			v, err := codec.DecodeRecord(e.binding, e.payload[j*size:(j+1)*size])
			if err != nil {
				return fmt.Errorf("decode packet %d value %d: %w", i, j, err)
			}
			fmt.Printf("    %+v\n", v)
		}
	}

	return nil
}
