// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package huffman implements lossless entropy coding of byte streams using
Huffman's algorithm.  Encoding counts symbol frequencies over a complete
input, builds an optimal prefix-code tree, and writes a self-describing
container: a header listing each symbol with its code length and code
value, the bit-packed payload, and a trailing count of filler bits in the
final payload byte.  Decoding rebuilds an equivalent tree from the header
alone and walks it bit by bit, so the original frequencies are never
needed to expand a container.

All multi-byte container fields are big-endian, and code bits are packed
most significant bit first.
*/
package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")
