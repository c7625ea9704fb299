// Package inet implements an interaction-net reducer: trees of tagged
// Words stored contiguously in pre-order, reduced by a single active-pair
// worklist using the annihilate/commute rewrite rules.
package inet

// Kind discriminates the four variants a Word can hold. Conceptually this
// is the two-bit tag described for the reference encoding; Go's GC does not
// let us stash live pointers inside a plain integer safely, so Word carries
// the discriminant as an explicit field instead of packing it into spare
// pointer bits (see DESIGN.md).
type Kind uint8

const (
	// KindEra is the eraser. The zero Word is a KindEra word, mirroring the
	// reference encoding where Era is the all-zero representation.
	KindEra Kind = iota
	// KindAuxiliary is one half of a wire; Aux points at the other half.
	KindAuxiliary
	// KindPrincipal is the principal port of a subtree owned elsewhere.
	KindPrincipal
	// KindCtr is a binary constructor node: a kind tag plus a length used
	// to skip its two children in O(1).
	KindCtr
)

func (k Kind) String() string {
	switch k {
	case KindEra:
		return "Era"
	case KindAuxiliary:
		return "Auxiliary"
	case KindPrincipal:
		return "Principal"
	case KindCtr:
		return "Ctr"
	default:
		return "Kind(?)"
	}
}

// Word is one pre-order-serialized slot of a Tree buffer. Exactly one of
// its variant fields is meaningful, selected by kind.
type Word struct {
	kind    Kind
	ctrKind uint32
	length  uint32
	aux     *Word
	tree    Tree
}

// Era returns the eraser word. It is also the zero value of Word.
func Era() Word { return Word{} }

// Aux wraps a pointer to the other half of a wire.
func Aux(p *Word) Word { return Word{kind: KindAuxiliary, aux: p} }

// Principal wraps the root of a tree owned independently of the buffer the
// new Word will live in.
func Principal(t Tree) Word { return Word{kind: KindPrincipal, tree: t} }

// Ctr builds a binary constructor header. length is the total word count of
// the subtree it heads, including the header itself.
func Ctr(kind, length uint32) Word { return Word{kind: KindCtr, ctrKind: kind, length: length} }

func (w Word) Kind() Kind { return w.kind }

func (w Word) IsEra() bool { return w.kind == KindEra }

// AuxPtr returns the wire partner for an Auxiliary word; nil otherwise.
func (w Word) AuxPtr() *Word { return w.aux }

// Subtree returns the owned subtree for a Principal word; nil otherwise.
func (w Word) Subtree() Tree { return w.tree }

// CtrKind returns the constructor tag for a Ctr word.
func (w Word) CtrKind() uint32 { return w.ctrKind }

// Span reports how many words the word heads: the Ctr length field for a
// constructor, 1 for every other variant (a leaf occupies a single slot).
func (w Word) Span() int {
	if w.kind == KindCtr {
		return int(w.length)
	}
	return 1
}
