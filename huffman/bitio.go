// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-bitstream"
)

// bitPacker serializes codewords into w most significant bit first,
// emitting a byte for every 8 accumulated bits, and tracks how many filler
// bits the final partial byte will need.  Codes stream through it one at a
// time; the whole bit sequence is never materialized.
type bitPacker struct {
	w    *bitstream.BitWriter
	bits uint64
}

func newBitPacker(w io.Writer) *bitPacker {
	return &bitPacker{w: bitstream.NewWriter(w)}
}

func (p *bitPacker) writeCode(c Code) error {
	p.bits += uint64(c.Len)
	return p.w.WriteBits(uint64(c.Bits), c.Len)
}

// pad fills the low bits of the final partial byte with zeroes, flushes
// it, and returns the filler bit count: 0 when the stream ended on a byte
// boundary, otherwise 8 minus the remainder.
func (p *bitPacker) pad() (int, error) {
	n := int((8 - p.bits%8) % 8)
	if err := p.w.Flush(bitstream.Zero); err != nil {
		return 0, err
	}
	return n, nil
}

// bitUnpacker yields a payload's logical bit sequence with the trailing
// padding removed.
type bitUnpacker struct {
	r         *bitstream.BitReader
	remaining int
}

func newBitUnpacker(payload []byte, padBits int) (*bitUnpacker, error) {
	if padBits < 0 || padBits > 7 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPadding, padBits)
	}
	total := len(payload)*8 - padBits
	if padBits > 0 && total <= 0 {
		return nil, fmt.Errorf("%w: %d padding bits but only %d payload bits",
			ErrInvalidPadding, padBits, len(payload)*8)
	}
	return &bitUnpacker{
		r:         bitstream.NewReader(bytes.NewReader(payload)),
		remaining: total,
	}, nil
}

// readBit returns the next logical bit, or ok == false once only padding
// remains.
func (u *bitUnpacker) readBit() (bit, ok bool) {
	if u.remaining == 0 {
		return false, false
	}
	b, err := u.r.ReadBit()
	if err != nil {
		// Unreachable: remaining never exceeds the in-memory payload.
		return false, false
	}
	u.remaining--
	return bool(b), true
}
