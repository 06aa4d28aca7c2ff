// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned by NewTree when the frequency table has
	// no symbols.  Encode never triggers it: zero-byte input produces the
	// minimal empty container instead.
	ErrEmptyAlphabet = errors.New("huffman: frequency table has no symbols")

	// ErrCodeTooLong is returned when a codeword would exceed the 32-bit
	// code value field of the container header.
	ErrCodeTooLong = errors.New("huffman: codeword longer than 32 bits")

	// ErrCorruptHeader is returned by Decode when the declared alphabet
	// size, code lengths, or code values are inconsistent with the
	// available header bytes or with each other.
	ErrCorruptHeader = errors.New("huffman: corrupt container header")

	// ErrInvalidPadding is returned by Decode when the trailing padding
	// bit count is outside 0-7 or not smaller than the payload bit count.
	ErrInvalidPadding = errors.New("huffman: invalid padding bit count")

	// ErrCorruptContainer is returned by Decode when the payload bit
	// sequence is exhausted in the middle of a codeword or walks off the
	// code tree.
	ErrCorruptContainer = errors.New("huffman: corrupt container payload")
)
