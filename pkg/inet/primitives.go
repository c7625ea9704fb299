package inet

// link connects two ports, closing the wire between them. It is the single
// place that knows how to combine every pair of Word variants; annihilate,
// commute and erase all bottom out here.
func (n *Net) link(a, b Word) {
	switch {
	case a.Kind() == KindEra && b.Kind() == KindEra:
		// nothing to do: two erasers meeting is a no-op.

	case a.Kind() == KindEra && b.Kind() == KindAuxiliary:
		*b.AuxPtr() = Era()
	case a.Kind() == KindAuxiliary && b.Kind() == KindEra:
		*a.AuxPtr() = Era()

	case a.Kind() == KindEra && b.Kind() == KindPrincipal:
		n.PushErase(b.Subtree())
	case a.Kind() == KindPrincipal && b.Kind() == KindEra:
		n.PushErase(a.Subtree())

	case a.Kind() == KindPrincipal && b.Kind() == KindPrincipal:
		n.PushActive(a.Subtree(), b.Subtree())

	case a.Kind() == KindPrincipal && b.Kind() == KindAuxiliary:
		*b.AuxPtr() = a
	case a.Kind() == KindAuxiliary && b.Kind() == KindPrincipal:
		*a.AuxPtr() = b

	case a.Kind() == KindAuxiliary && b.Kind() == KindAuxiliary:
		assert(a.AuxPtr() != nil && b.AuxPtr() != nil, "auxiliary word with nil partner")
		*a.AuxPtr() = b
		*b.AuxPtr() = a
	}
}

// bind attaches tree to port: if port is itself Principal, the tree it
// names is scheduled against the new tree; if Auxiliary, the wire's far
// end is rewritten to point at tree directly. bind is unreachable for Era
// (callers erase instead) and for Ctr (a Ctr is never a loose port).
func (n *Net) bind(port Word, tree Tree) {
	switch port.Kind() {
	case KindPrincipal:
		n.PushActive(port.Subtree(), tree)
	case KindAuxiliary:
		*port.AuxPtr() = Principal(tree)
	}
}

// erase walks t in pre-order and links every leaf port to an eraser. Ctr
// nodes contribute their two children and need no rewrite of their own;
// a Principal leaf becomes a fresh pending erase via link's Era/Principal
// case.
func (n *Net) erase(t Tree) {
	n.eras++
	var walk func(node Tree)
	walk = func(node Tree) {
		root := node.Root()
		if root.Kind() == KindCtr {
			left := node.Offset(1)
			walk(left)
			walk(node.Offset(1 + left.Length()))
			return
		}
		n.link(root, Era())
	}
	walk(t)
}
