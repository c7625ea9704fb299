package parser

import (
	"errors"
	"testing"

	"github.com/vic/itrees/pkg/inet"
)

func TestParseEra(t *testing.T) {
	net, free, err := Parse("*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.Active() != 0 {
		t.Fatalf("expected no active pairs, got %d", net.Active())
	}
	if len(free) != 1 || free[0].Kind() != inet.KindEra {
		t.Fatalf("expected one free Era port, got %+v", free)
	}
}

func TestParseActivePairSameKind(t *testing.T) {
	net, free, err := Parse("(* *) = (* *)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 0 {
		t.Fatalf("expected no free ports, got %d", len(free))
	}
	if net.Active() != 1 {
		t.Fatalf("expected 1 active pair, got %d", net.Active())
	}
	net.Reduce()
	if net.Stats().Annihilations != 1 {
		t.Fatalf("expected the pair to annihilate, got %+v", net.Stats())
	}
}

func TestParseBracketConstructor(t *testing.T) {
	_, free, err := Parse("[* *]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 1 {
		t.Fatalf("expected 1 free port, got %d", len(free))
	}
	if free[0].Kind() != inet.KindPrincipal || free[0].Subtree().Root().CtrKind() != 1 {
		t.Fatalf("expected a kind-1 constructor, got %+v", free[0])
	}
}

func TestParseExplicitKind(t *testing.T) {
	_, free, err := Parse("{7 * *}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free[0].Subtree().Root().CtrKind() != 7 {
		t.Fatalf("expected kind 7, got %+v", free[0])
	}
}

func TestParseSharedIdentifierSameTree(t *testing.T) {
	_, free, err := Parse("(x x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := free[0].Subtree()
	left, right := root[1], root[2]
	if left.AuxPtr() != &root[2] || right.AuxPtr() != &root[1] {
		t.Fatalf("expected the two x leaves wired to each other, got %+v %+v", left, right)
	}
}

func TestParseSharedIdentifierAcrossTrees(t *testing.T) {
	_, free, err := Parse("x (x *)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 2 {
		t.Fatalf("expected 2 free ports, got %d", len(free))
	}
	firstX := free[0]
	second := free[1].Subtree()
	secondX := second[1]
	if firstX.AuxPtr() != &second[1] || secondX.AuxPtr() != free[0] {
		t.Fatalf("expected the two x occurrences wired across trees, got %+v %+v", firstX, secondX)
	}
}

func TestParseUnexpectedEOF(t *testing.T) {
	_, _, err := Parse("(*")
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestParseExpectedNumber(t *testing.T) {
	_, _, err := Parse("{* *}")
	if !errors.Is(err, ErrExpectedNumber) {
		t.Fatalf("expected ErrExpectedNumber, got %v", err)
	}
}

func TestParseInvalidClose(t *testing.T) {
	_, _, err := Parse("(* *]")
	if !errors.Is(err, ErrInvalidClose) {
		t.Fatalf("expected ErrInvalidClose, got %v", err)
	}
}

func TestParseExpectedTree(t *testing.T) {
	_, _, err := Parse(")")
	if !errors.Is(err, ErrExpectedTree) {
		t.Fatalf("expected ErrExpectedTree, got %v", err)
	}
}

func TestParseLexError(t *testing.T) {
	_, _, err := Parse("(* #)")
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex, got %v", err)
	}
}

// TestParseMultipleStrictPairs covers the (tree '=' tree)* tail: once the
// first pair is formed, every further top-level tree must itself be
// followed by '=' and a second tree.
func TestParseMultipleStrictPairs(t *testing.T) {
	net, free, err := Parse("(* *) = (* *) [* *] = [* *]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 0 {
		t.Fatalf("expected no free ports, got %d", len(free))
	}
	if net.Active() != 2 {
		t.Fatalf("expected 2 active pairs, got %d", net.Active())
	}
}

// TestParseExpectedEqAfterFirstPair is the maintainer-reported symptom:
// "p = q r s = t" must not be read as free port r plus pairs (p,q), (s,t) —
// once the first pair is formed, a bare trailing tree is ErrExpectedEq.
func TestParseExpectedEqAfterFirstPair(t *testing.T) {
	_, _, err := Parse("p = q r s = t")
	if !errors.Is(err, ErrExpectedEq) {
		t.Fatalf("expected ErrExpectedEq, got %v", err)
	}
}

func TestParseExpectedEqOnBareTrailingTree(t *testing.T) {
	_, _, err := Parse("p = q r")
	if !errors.Is(err, ErrExpectedEq) {
		t.Fatalf("expected ErrExpectedEq, got %v", err)
	}
}
