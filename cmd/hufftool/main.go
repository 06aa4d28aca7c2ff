// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../../LICENSE.md.

// hufftool compresses and expands files using the huffman container
// format.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/vansh1220/File-Compression-Tool/huffman"
)

const progName = "hufftool"
const usageMessageRaw = `
Usage: hufftool [-d] SUBCOMMAND...

Subcommands:
  encode [-o FILE] INPUT
    Compress INPUT into a Huffman container, written to FILE, or to
    INPUT.huff when -o is not given.

  decode [-o FILE] INPUT
    Expand the Huffman container INPUT, written to FILE, or to INPUT
    with its .huff suffix removed.

  codes INPUT
    Print the code table that encoding INPUT would use, most frequent
    symbol first.
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func remainingArgs() []string {
	slice := ourFlags.Args()[argI:]
	argI = ourFlags.NArg()
	return slice
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// subcommandPaths parses "[-o FILE] INPUT" for encode/decode.
func subcommandPaths(sub string) (inPath, outPath string) {
	subFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	subFlags.Usage = func() {}
	subFlags.SetOutput(&nullWriter{})
	outputPathPtr := subFlags.String("o", "", "")

	argErr := subFlags.Parse(remainingArgs())
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}
	if subFlags.NArg() != 1 {
		usageErrorf("%s expects exactly one input file", sub)
	}
	return subFlags.Arg(0), *outputPathPtr
}

// transcodeFile runs op from inPath to outPath, removing the output file
// on failure so no partial container is left behind.
func transcodeFile(op func(io.Writer, io.Reader) error, outPath, inPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if err := op(w, bufio.NewReader(in)); err == nil {
		err = w.Flush()
	}
	if err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}

func encodeFromArgs() (func() error, error) {
	inPath, outPath := subcommandPaths("encode")
	if outPath == "" {
		outPath = inPath + ".huff"
	}
	return func() error {
		if err := transcodeFile(huffman.Encode, outPath, inPath); err != nil {
			return err
		}
		logSizes("encoded", inPath, outPath)
		return nil
	}, nil
}

func decodeFromArgs() (func() error, error) {
	inPath, outPath := subcommandPaths("decode")
	if outPath == "" {
		if !strings.HasSuffix(inPath, ".huff") {
			usageErrorf("cannot derive an output name from %s; use -o", inPath)
		}
		outPath = strings.TrimSuffix(inPath, ".huff")
	}
	return func() error {
		if err := transcodeFile(huffman.Decode, outPath, inPath); err != nil {
			return err
		}
		logSizes("decoded", inPath, outPath)
		return nil
	}, nil
}

func logSizes(verb, inPath, outPath string) {
	inInfo, inErr := os.Stat(inPath)
	outInfo, outErr := os.Stat(outPath)
	if inErr != nil || outErr != nil {
		return
	}
	log.Infof("%s %s (%d bytes) into %s (%d bytes)",
		verb, inPath, inInfo.Size(), outPath, outInfo.Size())
}

func codesFromArgs() (func() error, error) {
	inPath := nextArg("INPUT")
	endOfArgs()
	return func() error {
		p, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		ft := huffman.CountFrequencies(p)
		if len(ft) == 0 {
			return nil
		}
		tree, err := huffman.NewTree(ft)
		if err != nil {
			return err
		}
		table, err := tree.CodeTable()
		if err != nil {
			return err
		}

		syms := make([]byte, 0, len(table))
		for s := range table {
			syms = append(syms, s)
		}
		sort.Slice(syms, func(i, j int) bool {
			if ft[syms[i]] != ft[syms[j]] {
				return ft[syms[i]] > ft[syms[j]]
			}
			return syms[i] < syms[j]
		})
		for _, s := range syms {
			fmt.Fprintf(os.Stdout, "%-8s %12d  %s\n",
				strconv.QuoteRuneToASCII(rune(s)), ft[s], table[s])
		}
		return nil
	}, nil
}

func main() {
	startLogging()

	var err error
	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	var requestedCommand func() error
	subArg := nextArg("SUBCOMMAND")
	switch subArg {
	case "encode":
		requestedCommand, err = encodeFromArgs()
	case "decode":
		requestedCommand, err = decodeFromArgs()
	case "codes":
		requestedCommand, err = codesFromArgs()
	default:
		usageErrorf("unknown subcommand \"%s\"", subArg)
	}

	if err != nil {
		exitError(err)
	}

	err = requestedCommand()
	if err != nil {
		exitError(err)
	}
}
