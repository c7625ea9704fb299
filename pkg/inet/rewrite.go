package inet

// annihilate reduces a pair of trees that share a constructor kind (or
// where at least one side is Era). It walks both trees in lockstep
// pre-order, maintaining a descent counter (steps) of pending word-pairs still
// to visit. A Ctr meeting a Ctr replaces one pending pair with two; a Ctr
// meeting a plain port grafts the port onto the whole remaining subtree
// instead of descending further; an Era meeting a Ctr propagates the
// eraser onto every leaf of that subtree; two ports simply link.
func (n *Net) annihilate(a, b Tree) {
	n.anni++
	steps := 1
	for steps > 0 {
		ra, rb := a.Root(), b.Root()
		switch {
		case ra.Kind() == KindEra && rb.Kind() == KindCtr:
			pending := 2
			for pending > 0 {
				b = b.Offset(1)
				if b.Root().Kind() == KindCtr {
					pending++
				} else {
					n.link(b.Root(), Era())
					pending--
				}
			}

		case ra.Kind() == KindCtr && rb.Kind() == KindEra:
			pending := 2
			for pending > 0 {
				a = a.Offset(1)
				if a.Root().Kind() == KindCtr {
					pending++
				} else {
					n.link(a.Root(), Era())
					pending--
				}
			}

		case ra.Kind() == KindCtr && rb.Kind() == KindCtr:
			steps += 2

		case rb.Kind() == KindCtr: // (port, Ctr): graft port onto b's subtree
			n.bind(ra, b)
			pending := 2
			for pending > 0 {
				b = b.Offset(1)
				if b.Root().Kind() == KindCtr {
					pending++
				} else {
					pending--
				}
			}

		case ra.Kind() == KindCtr: // (Ctr, port): symmetric
			n.bind(rb, a)
			pending := 2
			for pending > 0 {
				a = a.Offset(1)
				if a.Root().Kind() == KindCtr {
					pending++
				} else {
					pending--
				}
			}

		default: // (port, port)
			n.link(ra, rb)
		}

		a = a.Offset(1)
		b = b.Offset(1)
		steps--
	}
}

// portLeaf is one port-bearing leaf discovered while scanning a tree for
// commutation, in pre-order. loopTo is the index of the other leaf this
// one wires to directly (a self-loop, resolved via Tree.Contains) or -1.
type portLeaf struct {
	ptr    *Word
	loopTo int
}

// scanPorts walks root in pre-order, collecting its Auxiliary/Principal
// leaves (Era leaves are not ports and are skipped). While scanning, a
// Principal leaf whose target shares root's constructor kind is not
// emitted as a port: its body is spliced in in its place (the graft
// fast-path), folding what would otherwise be a second commutation into
// this one. After the walk, any Auxiliary leaf whose partner lies inside
// root's own buffer and is also one of the leaves just collected is marked
// as a self-loop instead of a genuine external port. Leaves spliced in from
// a grafted body are not checked this way; a wire between two of them is
// treated as two external ports.
func (n *Net) scanPorts(root Tree, kind uint32) []portLeaf {
	var leaves []portLeaf
	var walk func(node Tree)
	walk = func(node Tree) {
		w := node.Root()
		switch w.Kind() {
		case KindCtr:
			left := node.Offset(1)
			walk(left)
			walk(node.Offset(1 + left.Length()))
		case KindPrincipal:
			target := w.Subtree()
			if tr := target.Root(); tr.Kind() == KindCtr && tr.CtrKind() == kind {
				n.grft++
				walk(target)
				return
			}
			leaves = append(leaves, portLeaf{ptr: &node[0], loopTo: -1})
		case KindEra:
			// not a port
		default: // Auxiliary
			leaves = append(leaves, portLeaf{ptr: &node[0], loopTo: -1})
		}
	}
	walk(root)

	for i, l := range leaves {
		w := *l.ptr
		if w.Kind() != KindAuxiliary || !root.Contains(w.AuxPtr()) {
			continue
		}
		for j, other := range leaves {
			if j != i && other.ptr == w.AuxPtr() {
				leaves[i].loopTo = j
				break
			}
		}
	}
	return leaves
}

// cloneEffective produces one independent structural copy of root (with
// the same kind-matching graft splicing scanPorts performs) and returns,
// in the same pre-order scanPorts uses, the addresses of its port-bearing
// leaves. Self-looped leaves are included in the result in their
// scanPorts position; closeLoops wires them up afterwards.
func cloneEffective(root Tree, kind uint32) (Tree, []*Word) {
	var buf []Word
	var leafIdx []int
	var walk func(node Tree)
	walk = func(node Tree) {
		w := node.Root()
		switch w.Kind() {
		case KindCtr:
			idx := len(buf)
			buf = append(buf, w)
			left := node.Offset(1)
			walk(left)
			walk(node.Offset(1 + left.Length()))
			buf[idx] = Ctr(w.CtrKind(), uint32(len(buf)-idx))
		case KindPrincipal:
			target := w.Subtree()
			if tr := target.Root(); tr.Kind() == KindCtr && tr.CtrKind() == kind {
				walk(target)
				return
			}
			leafIdx = append(leafIdx, len(buf))
			buf = append(buf, w)
		default: // Era, Auxiliary
			if w.Kind() != KindEra {
				leafIdx = append(leafIdx, len(buf))
			}
			buf = append(buf, w)
		}
	}
	walk(root)

	tree := Tree(buf)
	ptrs := make([]*Word, len(leafIdx))
	for i, idx := range leafIdx {
		ptrs[i] = &tree[idx]
	}
	return tree, ptrs
}

// closeLoops wires up, within one freshly built clone, every self-loop
// pair scan recorded for the tree that clone replicates.
func closeLoops(scan []portLeaf, ports []*Word) {
	for i, l := range scan {
		if l.loopTo > i {
			*ports[i] = Aux(ports[l.loopTo])
			*ports[l.loopTo] = Aux(ports[i])
		}
	}
}

// commute reduces a pair of trees with distinct constructor kinds by
// duplicating each across the other's ports: every port of a gets its own
// clone of b, every port of b its own clone of a, and the clones are wired
// crosswise so each pairing (i, j) of an a-port and a b-port gets a fresh
// wire between the matching clones. Self-loops (an Auxiliary leaf wired to
// another leaf of the same original tree) are closed locally inside every
// clone of that tree instead of being allocated an opposite-side clone.
func (n *Net) commute(a, b Tree) {
	n.comm++
	kindA := a.Root().CtrKind()
	kindB := b.Root().CtrKind()

	scanA := n.scanPorts(a, kindA)
	scanB := n.scanPorts(b, kindB)

	bc := make([]Tree, len(scanA))
	bcPorts := make([][]*Word, len(scanA))
	for i, l := range scanA {
		if l.loopTo == -1 {
			bc[i], bcPorts[i] = cloneEffective(b, kindB)
		}
	}

	ac := make([]Tree, len(scanB))
	acPorts := make([][]*Word, len(scanB))
	for j, l := range scanB {
		if l.loopTo == -1 {
			ac[j], acPorts[j] = cloneEffective(a, kindA)
		}
	}

	for j := range ac {
		if ac[j] != nil {
			closeLoops(scanA, acPorts[j])
		}
	}
	for i := range bc {
		if bc[i] != nil {
			closeLoops(scanB, bcPorts[i])
		}
	}

	for i, la := range scanA {
		if la.loopTo != -1 {
			continue
		}
		for j, lb := range scanB {
			if lb.loopTo != -1 {
				continue
			}
			n.link(Aux(acPorts[j][i]), Aux(bcPorts[i][j]))
		}
	}

	for i, la := range scanA {
		if la.loopTo != -1 {
			continue
		}
		n.bind(*la.ptr, bc[i])
	}
	for j, lb := range scanB {
		if lb.loopTo != -1 {
			continue
		}
		n.bind(*lb.ptr, ac[j])
	}
}
