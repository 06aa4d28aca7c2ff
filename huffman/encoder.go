// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Encode compresses all bytes from src into a self-describing container
// written to dst.  A zero-byte source is legal and produces the minimal
// empty container.  Nothing is written to dst after the first error, but
// callers writing to a file should discard it on failure rather than keep
// a truncated container.
func Encode(dst io.Writer, src io.Reader) error {
	p, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return encode(dst, p)
}

// EncodeBytes is Encode over in-memory byte slices.
func EncodeBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(dst io.Writer, p []byte) error {
	ft := CountFrequencies(p)
	if len(ft) == 0 {
		if err := writeHeader(dst, nil); err != nil {
			return err
		}
		return binary.Write(dst, byteOrder, uint32(0))
	}

	tree, err := NewTree(ft)
	if err != nil {
		return err
	}
	table, err := tree.CodeTable()
	if err != nil {
		return err
	}

	if err := writeHeader(dst, table); err != nil {
		return err
	}
	packer := newBitPacker(dst)
	for _, b := range p {
		if err := packer.writeCode(table[b]); err != nil {
			return err
		}
	}
	padBits, err := packer.pad()
	if err != nil {
		return err
	}
	log.Debugf("encoded %d bytes: alphabet %d, %d payload bits, %d pad bits",
		len(p), len(table), packer.bits, padBits)
	return binary.Write(dst, byteOrder, uint32(padBits))
}
