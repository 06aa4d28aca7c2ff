// Copyright © 2024 vansh1220.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"container/heap"
)

// Tree is a Huffman code tree.  Every interior node has exactly two
// children and every leaf holds exactly one symbol; an alphabet of one
// symbol yields a tree that is a bare leaf.  A tree is owned exclusively
// by the encode or decode call that built it.
type Tree struct {
	root   *node
	leaves int
}

// node is one tree node.  symbol is 0-255 for leaves and -1 for interior
// nodes; weight is the subtree frequency sum, meaningful only during
// construction.
type node struct {
	symbol      int
	weight      uint64
	left, right *node
}

// buildItem pairs a candidate subtree with its insertion sequence number.
// The sequence breaks weight ties so a given frequency table always builds
// the same tree.
type buildItem struct {
	node *node
	seq  int
}

type buildHeap []buildItem

func (h buildHeap) Len() int { return len(h) }
func (h buildHeap) Less(i, j int) bool {
	if h[i].node.weight != h[j].node.weight {
		return h[i].node.weight < h[j].node.weight
	}
	return h[i].seq < h[j].seq
}
func (h buildHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *buildHeap) Push(x any) {
	*h = append(*h, x.(buildItem))
}

func (h *buildHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// NewTree builds the optimal prefix-code tree for ft by repeatedly
// combining the two lowest-weight subtrees until one root remains.  It
// fails with ErrEmptyAlphabet when ft has no entries.
func NewTree(ft FreqTable) (*Tree, error) {
	if len(ft) == 0 {
		return nil, ErrEmptyAlphabet
	}

	h := make(buildHeap, 0, len(ft))
	seq := 0
	for _, s := range ft.symbols() {
		h = append(h, buildItem{&node{symbol: int(s), weight: ft[s]}, seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(buildItem)
		b := heap.Pop(&h).(buildItem)
		merged := &node{
			symbol: -1,
			weight: a.node.weight + b.node.weight,
			left:   a.node,
			right:  b.node,
		}
		heap.Push(&h, buildItem{merged, seq})
		seq++
	}

	return &Tree{root: h[0].node, leaves: len(ft)}, nil
}

// LeafCount returns the number of leaves, which equals the alphabet size
// of the frequency table the tree was built from.
func (t *Tree) LeafCount() int {
	return t.leaves
}
