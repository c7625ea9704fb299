package inet

import "unsafe"

// Tree is a contiguous pre-order serialization of an interaction-net
// subtree: word zero is the root (its principal port), with zero or more
// auxiliary-port leaves following, skippable in O(1) via Ctr length fields.
type Tree []Word

// Root returns the tree's principal word.
func (t Tree) Root() Word {
	assert(len(t) > 0, "root of an empty tree (use-after-free?)")
	return t[0]
}

// Offset returns the suffix of t starting at word k, i.e. the subtree
// rooted there.
func (t Tree) Offset(k int) Tree {
	assert(k >= 0 && k <= len(t), "tree offset out of range")
	return t[k:]
}

// Length returns the word count of the tree's root node: the Ctr length
// field for a constructor, 1 for a leaf.
func (t Tree) Length() int {
	n := t.Root().Span()
	assert(n <= len(t), "ctr length exceeds its own buffer")
	return n
}

// Contains reports whether p points at a word physically inside t's
// backing array. Used to detect self-loops (an Auxiliary leaf whose
// partner is another leaf of the very tree being scanned) without walking
// the tree a second time.
func (t Tree) Contains(p *Word) bool {
	if len(t) == 0 || p == nil {
		return false
	}
	lo := uintptr(unsafe.Pointer(&t[0]))
	hi := lo + uintptr(len(t))*unsafe.Sizeof(t[0])
	pp := uintptr(unsafe.Pointer(p))
	return pp >= lo && pp < hi
}

// Clone makes a structural, word-for-word copy of t into a freshly
// allocated buffer. Auxiliary back-links in the source are not rewritten:
// the copy's Auxiliary words still point at the source's addresses, which
// is correct only when the source is about to be discarded without any
// external partner depending on the copy.
func Clone(t Tree) Tree {
	c := make(Tree, len(t))
	copy(c, t)
	return c
}

