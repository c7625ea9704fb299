package printer

import (
	"strings"
	"testing"

	"github.com/vic/itrees/pkg/inet"
	"github.com/vic/itrees/pkg/parser"
)

func render(t *testing.T, src string) string {
	t.Helper()
	net, free, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var buf strings.Builder
	if err := New().Print(&buf, free, net); err != nil {
		t.Fatalf("print %q: %v", src, err)
	}
	return buf.String()
}

func TestPrintEra(t *testing.T) {
	if got := render(t, "*"); got != "*\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintParenConstructor(t *testing.T) {
	if got := render(t, "(* *)"); got != "(* *)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintBracketConstructor(t *testing.T) {
	if got := render(t, "[* *]"); got != "[* *]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintExplicitKind(t *testing.T) {
	if got := render(t, "{3 * *}"); got != "{3 * *}\n" {
		t.Fatalf("got %q", got)
	}
}

// TestPrintSharedIdentifierSelfLoop covers a wire with no name carried from
// the source: both leaves must render as the same synthetic identifier.
func TestPrintSharedIdentifierSelfLoop(t *testing.T) {
	got := render(t, "(x x)")
	if !strings.HasPrefix(got, "(") || !strings.HasSuffix(got, ")\n") {
		t.Fatalf("expected a single paren constructor, got %q", got)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(got, "("), ")\n")
	parts := strings.SplitN(inner, " ", 2)
	if len(parts) != 2 || parts[0] != parts[1] {
		t.Fatalf("expected both leaves to share one synthetic name, got %q", got)
	}
}

// TestPrintActivePair covers the lhs = rhs form for a pending active pair.
func TestPrintActivePair(t *testing.T) {
	got := render(t, "(* *) = [* *]")
	if got != "(* *) = [* *]\n" {
		t.Fatalf("got %q", got)
	}
}

// TestPrintSharedIdentifierAcrossFreePorts covers a name shared between two
// separate top-level free ports: both must render with the same synthetic
// identifier even though they belong to different trees.
func TestPrintSharedIdentifierAcrossFreePorts(t *testing.T) {
	got := render(t, "x (x *)")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if lines[1] != "("+lines[0]+" *)" {
		t.Fatalf("expected the shared name to match across free ports, got %q", got)
	}
}

func TestPrintWordEra(t *testing.T) {
	p := New()
	if err := p.printWord(&strings.Builder{}, inet.Era()); err != nil {
		t.Fatalf("unexpected error printing Era: %v", err)
	}
}

// roundTrip prints net/free once, reparses that text, prints the result a
// second time, and returns both renderings so the caller can assert they
// match: parse . print must be the identity up to whitespace and wire
// naming, whatever state net/free are in (pre- or post-reduction).
func roundTrip(t *testing.T, free []*inet.Word, net *inet.Net) (first, second string) {
	t.Helper()
	var buf1 strings.Builder
	if err := New().Print(&buf1, free, net); err != nil {
		t.Fatalf("print: %v", err)
	}
	first = buf1.String()

	net2, free2, err := parser.Parse(first)
	if err != nil {
		t.Fatalf("reparse %q: %v", first, err)
	}
	var buf2 strings.Builder
	if err := New().Print(&buf2, free2, net2); err != nil {
		t.Fatalf("print %q: %v", first, err)
	}
	second = buf2.String()
	return first, second
}

// TestRoundTripSelfLoopAfterReduce covers a free port that is bound to a
// self-looped subtree only after reduction runs (the pointer-staleness case
// Print guards against): the commuting pair grafts a self-loop onto each of
// the left side's two free ports, and both survivors must round-trip.
func TestRoundTripSelfLoopAfterReduce(t *testing.T) {
	net, free, err := parser.Parse("p q (p q) = {2 x x}")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	net.Reduce()
	if net.Active() != 0 {
		t.Fatalf("expected normal form, got %d pending pairs", net.Active())
	}

	first, second := roundTrip(t, free, net)
	if first != second {
		t.Fatalf("round trip mismatch:\nfirst:  %q\nsecond: %q", first, second)
	}
	if !strings.Contains(first, "{2 ") {
		t.Fatalf("expected the self-loop's kind-2 constructor in output, got %q", first)
	}
}

// TestRoundTripGraftFastPath covers scanPorts' graft fast-path: a Principal
// leaf sharing its parent's constructor kind is spliced into the same scan
// rather than emitted as its own port, folding a second commutation into
// the first. The net is built directly with inet's primitives (the grafted
// indirection only ever arises mid-reduction, never straight out of the
// parser), then rendered and round-tripped exactly as any other net would
// be.
func TestRoundTripGraftFastPath(t *testing.T) {
	var x, y, z, p, q inet.Word

	inner := make(inet.Tree, 3) // kind 0
	inner[0] = inet.Ctr(0, 3)
	inner[1] = inet.Aux(&x)
	x = inet.Aux(&inner[1])
	inner[2] = inet.Aux(&y)
	y = inet.Aux(&inner[2])

	outer := make(inet.Tree, 3) // kind 0, first child grafts into inner
	outer[0] = inet.Ctr(0, 3)
	outer[1] = inet.Principal(inner)
	outer[2] = inet.Aux(&z)
	z = inet.Aux(&outer[2])

	b := make(inet.Tree, 3) // kind 1, distinct from outer's kind 0
	b[0] = inet.Ctr(1, 3)
	b[1] = inet.Aux(&p)
	p = inet.Aux(&b[1])
	b[2] = inet.Aux(&q)
	q = inet.Aux(&b[2])

	net := inet.New()
	net.PushActive(outer, b)
	net.Reduce()
	if net.Stats().Grafts == 0 {
		t.Fatalf("expected the graft fast-path to fire, got %+v", net.Stats())
	}

	free := []*inet.Word{&x, &y, &z, &p, &q}
	first, second := roundTrip(t, free, net)
	if first != second {
		t.Fatalf("round trip mismatch:\nfirst:  %q\nsecond: %q", first, second)
	}
}
