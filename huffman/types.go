// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"sort"
)

// FreqTable maps each symbol observed in an input to its occurrence count.
//
// Invariants:
//   - every entry has a count of at least 1
//   - the key set is exactly the set of distinct byte values in the input
//
// A table is built once by CountFrequencies and not mutated afterward.
type FreqTable map[byte]uint64

// CountFrequencies scans p once and returns its frequency table.  The
// table is empty iff p is empty.
func CountFrequencies(p []byte) FreqTable {
	ft := make(FreqTable)
	for _, b := range p {
		ft[b]++
	}
	return ft
}

// symbols returns the table's symbols in ascending byte order, so that
// tree construction and header layout are deterministic.
func (ft FreqTable) symbols() []byte {
	syms := make([]byte, 0, len(ft))
	for s := range ft {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Code is a single Huffman codeword: its bits interpreted as an unsigned
// integer, most significant bit first, in the low Len bits of Bits.
//
// Invariants:
//   - 1 <= Len <= 32
//   - Bits has no set bits above position Len-1
type Code struct {
	Bits uint32
	Len  int
}

func (c Code) String() string {
	b := make([]byte, c.Len)
	for i := range b {
		if c.Bits>>uint(c.Len-1-i)&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// CodeTable maps each symbol of an alphabet to its codeword.  Tables
// produced by Tree.CodeTable are prefix-free by construction; tables read
// back from a container header are validated during tree reconstruction.
type CodeTable map[byte]Code

func (ct CodeTable) symbols() []byte {
	syms := make([]byte, 0, len(ct))
	for s := range ct {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
