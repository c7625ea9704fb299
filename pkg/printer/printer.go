// Package printer renders a Net snapshot back to the textual format
// pkg/parser accepts: each free port as a tree on its own line, each
// remaining active pair as "lhs = rhs". Composed with parser.Parse, it
// makes parse . print the identity up to whitespace and wire naming.
//
// Free ports are taken as *inet.Word rather than inet.Word, since a port
// may be rebound by a reduction run between Parse and Print; see Print.
package printer

import (
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/vic/itrees/pkg/inet"
)

// lower returns the smaller of a and b, used to pick a canonical,
// order-independent key for a two-ended wire from its pair of addresses.
func lower[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Printer renders one or more Net snapshots, numbering unnamed two-sided
// wires deterministically as it goes: the first time either end of a wire
// is printed, it is assigned the next sequential synthetic name, and that
// name is reused if the same wire is reached again later, in the same or a
// later Print call on the same Printer.
type Printer struct {
	names map[uintptr]string
	next  int
}

// New returns a Printer with a fresh naming counter.
func New() *Printer {
	return &Printer{names: map[uintptr]string{}}
}

// Print writes free, then net's pending active pairs, to w. Each free port
// is dereferenced here, at render time, so a port bound to a fresh subtree
// by a reduction that happened after Parse returned renders its current
// value rather than whatever it held when parsing finished.
func (p *Printer) Print(w io.Writer, free []*inet.Word, net *inet.Net) error {
	for _, root := range free {
		if err := p.printWord(w, *root); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, pr := range net.ActivePairs() {
		if pr.B == nil {
			continue // a pending erase has no textual form of its own
		}
		if err := p.printWord(w, inet.Principal(pr.A)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " = "); err != nil {
			return err
		}
		if err := p.printWord(w, inet.Principal(pr.B)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printWord(w io.Writer, word inet.Word) error {
	switch word.Kind() {
	case inet.KindEra:
		_, err := io.WriteString(w, "*")
		return err

	case inet.KindAuxiliary:
		_, err := io.WriteString(w, p.nameFor(word.AuxPtr()))
		return err

	case inet.KindPrincipal:
		return p.printTree(w, word.Subtree())

	default:
		return fmt.Errorf("printer: unexpected word kind %v", word.Kind())
	}
}

// nameFor returns the synthetic identifier for the wire whose other end is
// partner, assigning one on first use. The name is keyed off the lower of
// partner's own address and the address it in turn points back to, so
// whichever side is printed first gets the same label as the other.
func (p *Printer) nameFor(partner *inet.Word) string {
	key := uintptr(unsafe.Pointer(partner))
	if partner.Kind() == inet.KindAuxiliary {
		key = lower(key, uintptr(unsafe.Pointer(partner.AuxPtr())))
	}
	if name, ok := p.names[key]; ok {
		return name
	}
	name := fmt.Sprintf("w%d", p.next)
	p.next++
	p.names[key] = name
	return name
}

func (p *Printer) printTree(w io.Writer, t inet.Tree) error {
	root := t.Root()
	if root.Kind() != inet.KindCtr {
		return p.printWord(w, root)
	}

	open, close := bracketsFor(root.CtrKind())
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}

	left := t.Offset(1)
	if err := p.printTree(w, left); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	if err := p.printTree(w, t.Offset(1+left.Length())); err != nil {
		return err
	}

	_, err := io.WriteString(w, close)
	return err
}

func bracketsFor(kind uint32) (open, close string) {
	switch kind {
	case 0:
		return "(", ")"
	case 1:
		return "[", "]"
	default:
		return fmt.Sprintf("{%d ", kind), "}"
	}
}
