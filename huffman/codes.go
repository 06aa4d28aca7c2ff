// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

// maxCodeBits caps codeword length at the width of the container header's
// code value field.
const maxCodeBits = 32

// CodeTable assigns a codeword to every leaf from its root-to-leaf path,
// 0 for a left branch and 1 for a right branch.  A single-leaf tree has no
// branches to walk, so its sole symbol gets the one-bit code 0; the
// decoder's tree reconstruction agrees with that choice.  Fails with
// ErrCodeTooLong if any path is deeper than 32 branches.
func (t *Tree) CodeTable() (CodeTable, error) {
	table := make(CodeTable, t.leaves)
	if t.root.left == nil {
		table[byte(t.root.symbol)] = Code{Bits: 0, Len: 1}
		return table, nil
	}
	if err := assignCodes(t.root, 0, 0, table); err != nil {
		return nil, err
	}
	return table, nil
}

// assignCodes walks the subtree at n depth-first, accumulating the path
// bits.  Recursion depth is bounded by the maxCodeBits check.
func assignCodes(n *node, bits uint32, depth int, table CodeTable) error {
	if n.left == nil {
		table[byte(n.symbol)] = Code{Bits: bits, Len: depth}
		return nil
	}
	if depth == maxCodeBits {
		return ErrCodeTooLong
	}
	if err := assignCodes(n.left, bits<<1, depth+1, table); err != nil {
		return err
	}
	return assignCodes(n.right, bits<<1|1, depth+1, table)
}
