package inet

import "time"

// pair is one entry of the active worklist. A nil b marks a pending erase
// of a rather than a genuine active pair.
type pair struct {
	a, b Tree
}

// Net owns the active-pair worklist and the running rewrite counters for a
// single reduction session. Trees are plain Go slices; Net does not own
// their backing arrays, only the schedule of pending rewrites over them.
type Net struct {
	active []pair

	anni uint64 // annihilations
	comm uint64 // commutations
	eras uint64 // erasures
	grft uint64 // grafts folded into a commutation

	elapsed time.Duration
}

// New returns an empty Net ready to accept seed pairs via PushActive or
// PushErase.
func New() *Net {
	return &Net{}
}

// PushActive schedules a and b to be reduced against each other.
func (n *Net) PushActive(a, b Tree) {
	n.active = append(n.active, pair{a: a, b: b})
}

// PushErase schedules a to be erased (every leaf linked to Era).
func (n *Net) PushErase(a Tree) {
	n.active = append(n.active, pair{a: a})
}

// Link applies the link primitive to two loose ports: the same primitive
// annihilate, commute and erase use internally, exported for wiring ports
// by hand before reduction begins.
func (n *Net) Link(a, b Word) { n.link(a, b) }

// Stats is a snapshot of a Net's rewrite counters, returned by value so
// callers can't mutate the live counters through it.
type Stats struct {
	Annihilations uint64
	Commutations  uint64
	Erasures      uint64
	Grafts        uint64
	Elapsed       time.Duration
}

// Stats returns the current rewrite counters.
func (n *Net) Stats() Stats {
	return Stats{
		Annihilations: n.anni,
		Commutations:  n.comm,
		Erasures:      n.eras,
		Grafts:        n.grft,
		Elapsed:       n.elapsed,
	}
}

// Active reports how many pairs are still pending. Used by tests that want
// to assert a reduction reached a normal form.
func (n *Net) Active() int { return len(n.active) }

// Pair is an exported view of one worklist entry, for callers (the printer)
// that need to render a Net's remaining schedule. A nil B marks a pending
// erase of A rather than a genuine active pair.
type Pair struct {
	A, B Tree
}

// ActivePairs returns a snapshot of the pending worklist, in push order.
func (n *Net) ActivePairs() []Pair {
	out := make([]Pair, len(n.active))
	for i, p := range n.active {
		out[i] = Pair{A: p.a, B: p.b}
	}
	return out
}

// Reduce drains the active worklist until empty, applying erase,
// annihilate, or commute to each popped pair as appropriate. Reduction is
// single-threaded and cooperative: there is no cancellation mid-rewrite,
// and nothing here spawns a goroutine.
func (n *Net) Reduce() {
	start := time.Now()
	for len(n.active) > 0 {
		p := n.active[len(n.active)-1]
		n.active = n.active[:len(n.active)-1]

		if p.b == nil {
			n.erase(p.a)
			continue
		}

		ka, aIsCtr := ctrKind(p.a)
		kb, bIsCtr := ctrKind(p.b)
		if !aIsCtr || !bIsCtr || ka == kb {
			n.annihilate(p.a, p.b)
		} else {
			n.commute(p.a, p.b)
		}
	}
	n.elapsed += time.Since(start)
}

// ctrKind reports the constructor tag of t's root and whether it is in
// fact a Ctr; Era (and, transiently, loose ports) report false.
func ctrKind(t Tree) (uint32, bool) {
	r := t.Root()
	if r.Kind() == KindCtr {
		return r.CtrKind(), true
	}
	return 0, false
}
