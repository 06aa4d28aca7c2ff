// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitPackerPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	p := newBitPacker(&buf)

	// 101 01 1 -> 101011 -> 10101100 with 2 filler bits.
	for _, c := range []Code{{Bits: 0b101, Len: 3}, {Bits: 0b01, Len: 2}, {Bits: 0b1, Len: 1}} {
		if err := p.writeCode(c); err != nil {
			t.Fatalf("writeCode(%v): %v", c, err)
		}
	}
	pad, err := p.pad()
	if err != nil {
		t.Fatalf("pad: %v", err)
	}
	if pad != 2 {
		t.Errorf("pad = %d, want 2", pad)
	}
	if want := []byte{0xac}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("packed = % x, want % x", buf.Bytes(), want)
	}
}

func TestBitPackerByteAligned(t *testing.T) {
	var buf bytes.Buffer
	p := newBitPacker(&buf)
	if err := p.writeCode(Code{Bits: 0xff, Len: 8}); err != nil {
		t.Fatalf("writeCode: %v", err)
	}
	pad, err := p.pad()
	if err != nil {
		t.Fatalf("pad: %v", err)
	}
	if pad != 0 {
		t.Errorf("pad = %d, want 0", pad)
	}
	if want := []byte{0xff}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("packed = % x, want % x", buf.Bytes(), want)
	}
}

func TestBitUnpackerStopsBeforePadding(t *testing.T) {
	u, err := newBitUnpacker([]byte{0xac}, 2)
	if err != nil {
		t.Fatalf("newBitUnpacker: %v", err)
	}
	want := []bool{true, false, true, false, true, true}
	for i, wantBit := range want {
		bit, ok := u.readBit()
		if !ok {
			t.Fatalf("bit %d: unexpected end", i)
		}
		if bit != wantBit {
			t.Errorf("bit %d = %v, want %v", i, bit, wantBit)
		}
	}
	if _, ok := u.readBit(); ok {
		t.Errorf("read past the padding boundary")
	}
}

func TestBitUnpackerPadValidation(t *testing.T) {
	if _, err := newBitUnpacker([]byte{0x00}, 8); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("pad 8: got %v, want ErrInvalidPadding", err)
	}
	if _, err := newBitUnpacker(nil, 1); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("pad 1 of empty payload: got %v, want ErrInvalidPadding", err)
	}
	u, err := newBitUnpacker(nil, 0)
	if err != nil {
		t.Fatalf("empty payload, pad 0: %v", err)
	}
	if _, ok := u.readBit(); ok {
		t.Errorf("empty payload yielded a bit")
	}
}
