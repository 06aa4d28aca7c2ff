// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Container layout, all multi-byte integers big-endian uint32:
//
//	alphabet size
//	repeated per symbol, in ascending symbol order:
//	  symbol (1 byte), code bit length, code value (MSB-first integer)
//	payload bytes
//	padding bit count for the final payload byte (0-7)
//
// A zero-byte input produces the 8-byte container 0x00000000 0x00000000.
//
// The padding count trails the payload rather than sitting in the header,
// so a container too short to hold it is a payload-level defect
// (ErrCorruptContainer); ErrCorruptHeader covers inconsistencies within
// the alphabet entries themselves.

const maxAlphabet = 256

var byteOrder = binary.BigEndian

func writeHeader(w io.Writer, table CodeTable) error {
	if err := binary.Write(w, byteOrder, uint32(len(table))); err != nil {
		return err
	}
	for _, s := range table.symbols() {
		c := table[s]
		if _, err := w.Write([]byte{s}); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, uint32(c.Len)); err != nil {
			return err
		}
		if err := binary.Write(w, byteOrder, c.Bits); err != nil {
			return err
		}
	}
	return nil
}

func readHeader(r io.Reader) (CodeTable, error) {
	var count uint32
	if err := binary.Read(r, byteOrder, &count); err != nil {
		return nil, fmt.Errorf("%w: alphabet size: %v", ErrCorruptHeader, err)
	}
	if count > maxAlphabet {
		return nil, fmt.Errorf("%w: alphabet size %d", ErrCorruptHeader, count)
	}

	table := make(CodeTable, count)
	var entry [9]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptHeader, i, err)
		}
		sym := entry[0]
		length := byteOrder.Uint32(entry[1:5])
		value := byteOrder.Uint32(entry[5:9])
		if length == 0 || length > maxCodeBits {
			return nil, fmt.Errorf("%w: symbol %#02x has code length %d",
				ErrCorruptHeader, sym, length)
		}
		if uint64(value) >= 1<<length {
			return nil, fmt.Errorf("%w: symbol %#02x code value %d wider than %d bits",
				ErrCorruptHeader, sym, value, length)
		}
		if _, dup := table[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %#02x", ErrCorruptHeader, sym)
		}
		table[sym] = Code{Bits: value, Len: int(length)}
	}
	return table, nil
}
