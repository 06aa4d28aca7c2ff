// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decode reads one container from src and writes the original bytes to
// dst.  The container is fully self-describing: the code tree is rebuilt
// from the header's (value, length) pairs without the original
// frequencies.
func Decode(dst io.Writer, src io.Reader) error {
	p, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return decode(dst, p)
}

// DecodeBytes is Decode over in-memory byte slices.
func DecodeBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := decode(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(dst io.Writer, p []byte) error {
	r := bytes.NewReader(p)
	table, err := readHeader(r)
	if err != nil {
		return err
	}

	rest := p[len(p)-r.Len():]
	if len(rest) < 4 {
		return fmt.Errorf("%w: missing padding count", ErrCorruptContainer)
	}
	payload := rest[:len(rest)-4]
	padBits := int(byteOrder.Uint32(rest[len(rest)-4:]))

	unpacker, err := newBitUnpacker(payload, padBits)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		if len(payload) != 0 {
			return fmt.Errorf("%w: payload with an empty alphabet", ErrCorruptContainer)
		}
		return nil
	}

	root, err := treeFromCodes(table)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(dst)
	cur := root
	emitted := 0
	for {
		bit, ok := unpacker.readBit()
		if !ok {
			break
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur == nil {
			return fmt.Errorf("%w: bit walk left the code tree after %d symbols",
				ErrCorruptContainer, emitted)
		}
		if cur.symbol >= 0 {
			if err := w.WriteByte(byte(cur.symbol)); err != nil {
				return err
			}
			emitted++
			cur = root
		}
	}
	if cur != root {
		return fmt.Errorf("%w: payload exhausted mid-codeword after %d symbols",
			ErrCorruptContainer, emitted)
	}
	log.Debugf("decoded %d symbols from %d payload bytes, alphabet %d",
		emitted, len(payload), len(table))
	return w.Flush()
}

// treeFromCodes rebuilds a code tree equivalent to the encoder's from the
// codewords alone, inserting each code bit by bit and creating interior
// nodes on demand.  An insertion that lands on or passes through an
// existing leaf, or stops at an interior node, means the header's codes
// are not prefix-free, which fails with ErrCorruptHeader.
func treeFromCodes(table CodeTable) (*node, error) {
	root := &node{symbol: -1}
	for _, s := range table.symbols() {
		c := table[s]
		cur := root
		for i := c.Len - 1; i >= 0; i-- {
			if cur.symbol >= 0 {
				return nil, fmt.Errorf("%w: code for symbol %#02x passes through a leaf",
					ErrCorruptHeader, s)
			}
			next := &cur.left
			if c.Bits>>uint(i)&1 == 1 {
				next = &cur.right
			}
			if *next == nil {
				*next = &node{symbol: -1}
			}
			cur = *next
		}
		if cur.symbol >= 0 || cur.left != nil || cur.right != nil {
			return nil, fmt.Errorf("%w: code for symbol %#02x conflicts with another code",
				ErrCorruptHeader, s)
		}
		cur.symbol = int(s)
	}
	return root, nil
}
