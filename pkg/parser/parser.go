// Package parser reads the textual interaction-net source format into a
// *inet.Net loaded with active pairs, plus the program's free ports.
//
// Grammar:
//
//	program := tree* ('=' tree)? (tree '=' tree)*
//	tree     := '*' | ident | '(' tree tree ')' | '[' tree tree ']' | '{' number tree tree '}'
//
// Only the leading run of bare trees may stand alone as free ports; the last
// of them, if any, optionally pairs with one further tree after a single
// '='. Every top-level tree parsed after that point must be followed by
// '=' and a second tree — a bare trailing tree is ErrExpectedEq, not a free
// port. '(' and '[' are the two built-in constructor kinds (0 and 1);
// '{' n ... '}' names an arbitrary kind explicitly.
//
// Identifiers are resolved with a scope map: the first occurrence of a name
// anywhere in the program allocates a placeholder leaf and waits; the second
// occurrence stitches the two leaves into a single Auxiliary wire. A name
// used more than twice, or never closed, is a malformed program and is not
// guarded against here — the caller is expected to supply well-formed input,
// per the same contract the net package places on its own inputs.
package parser

import "github.com/vic/itrees/pkg/inet"

// Parser turns lexed tokens into inet trees, threading a scope map across
// every tree it builds so identifiers can be resolved across the whole
// program rather than just within one tree.
type Parser struct {
	lex    *lexer
	tok    token
	tokErr error
	scope  map[string]*inet.Word
}

// New prepares a Parser over src and reads its first token.
func New(src string) *Parser {
	p := &Parser{lex: newLexer(src), scope: map[string]*inet.Word{}}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.tok, p.tokErr = p.lex.next()
}

// Parse reads an entire program from src, returning a Net pre-loaded with
// every active pair, plus the program's free ports as stable addresses in
// source order. A free port's word can still change after Parse returns —
// reduction may bind it to a fresh subtree — so it is returned as a
// *inet.Word rather than a copy of whatever it held at parse time; callers
// (the printer, typically) dereference it whenever they want its current
// value.
func Parse(src string) (*inet.Net, []*inet.Word, error) {
	p := New(src)
	n := inet.New()
	var freeRefs []*inet.Word

	// Leading phase: bare trees are free ports, up to whichever one
	// immediately precedes '=' (if any) or end of input.
	var pendingLHS inet.Tree
	havePendingLHS := false
	for {
		if p.tokErr != nil {
			return nil, nil, p.tokErr
		}
		if p.tok.kind == tokEOF || p.tok.kind == tokEq {
			break
		}
		tr, err := p.parseTree()
		if err != nil {
			return nil, nil, err
		}
		if havePendingLHS {
			freeRefs = append(freeRefs, freePortRef(pendingLHS))
		}
		pendingLHS, havePendingLHS = tr, true
	}

	if p.tokErr != nil {
		return nil, nil, p.tokErr
	}
	if p.tok.kind == tokEq {
		p.advance()
		rhs, err := p.parseTree()
		if err != nil {
			return nil, nil, err
		}
		if !havePendingLHS {
			return nil, nil, ErrExpectedTree
		}
		n.PushActive(pendingLHS, rhs)
		havePendingLHS = false
	}
	if havePendingLHS {
		freeRefs = append(freeRefs, freePortRef(pendingLHS))
	}

	// Strict phase: every remaining top-level tree is the left side of a
	// mandatory tree '=' tree pair; a bare trailing tree is ErrExpectedEq.
	for {
		if p.tokErr != nil {
			return nil, nil, p.tokErr
		}
		if p.tok.kind == tokEOF {
			break
		}
		lhs, err := p.parseTree()
		if err != nil {
			return nil, nil, err
		}
		if p.tokErr != nil {
			return nil, nil, p.tokErr
		}
		if p.tok.kind != tokEq {
			return nil, nil, ErrExpectedEq
		}
		p.advance()
		rhs, err := p.parseTree()
		if err != nil {
			return nil, nil, err
		}
		n.PushActive(lhs, rhs)
	}

	return n, freeRefs, nil
}

// freePortRef returns a stable address holding a single-word tree's (Era or
// identifier leaf) own word directly, or a boxed Principal wrapping
// anything larger, so callers always handle free ports uniformly.
func freePortRef(t inet.Tree) *inet.Word {
	if len(t) == 1 {
		return &t[0]
	}
	boxed := inet.Principal(t)
	return &boxed
}

// builder accumulates one top-level tree's words by append, recording
// identifier leaves as indices rather than pointers: the backing array may
// still move (via append's reallocation) until the tree is fully parsed.
type builder struct {
	buf  []inet.Word
	refs []identRef
}

type identRef struct {
	idx  int
	name string
}

// parseTree parses one whole top-level tree and resolves every identifier
// it referenced, either against an earlier tree's pending half or against
// another occurrence within this same tree.
func (p *Parser) parseTree() (inet.Tree, error) {
	b := &builder{}
	if err := p.parseTreeInto(b); err != nil {
		return nil, err
	}
	tree := inet.Tree(b.buf)
	p.resolveRefs(tree, b.refs)
	return tree, nil
}

func (p *Parser) parseTreeInto(b *builder) error {
	if p.tokErr != nil {
		return p.tokErr
	}
	switch p.tok.kind {
	case tokEra:
		b.buf = append(b.buf, inet.Era())
		p.advance()
		return nil

	case tokIdent:
		idx := len(b.buf)
		b.buf = append(b.buf, inet.Word{})
		b.refs = append(b.refs, identRef{idx: idx, name: p.tok.text})
		p.advance()
		return nil

	case tokLParen:
		p.advance()
		return p.parseCtrBody(b, 0, tokRParen)

	case tokLBracket:
		p.advance()
		return p.parseCtrBody(b, 1, tokRBracket)

	case tokLBrace:
		p.advance()
		if p.tokErr != nil {
			return p.tokErr
		}
		if p.tok.kind != tokNumber {
			return ErrExpectedNumber
		}
		kind := uint32(p.tok.num)
		p.advance()
		return p.parseCtrBody(b, kind, tokRBrace)

	case tokEOF:
		return ErrUnexpectedEOF

	default:
		return ErrExpectedTree
	}
}

// parseCtrBody parses the two children of a constructor and its closing
// delimiter, patching the header word in place once the span is known.
func (p *Parser) parseCtrBody(b *builder, kind uint32, close tokenKind) error {
	idx := len(b.buf)
	b.buf = append(b.buf, inet.Word{})

	if err := p.parseTreeInto(b); err != nil {
		return err
	}
	if err := p.parseTreeInto(b); err != nil {
		return err
	}
	b.buf[idx] = inet.Ctr(kind, uint32(len(b.buf)-idx))

	if p.tokErr != nil {
		return p.tokErr
	}
	if p.tok.kind != close {
		return ErrInvalidClose
	}
	p.advance()
	return nil
}

// resolveRefs wires up every identifier leaf recorded while building tree.
// A name seen for the first time anywhere is parked in the parser's global
// scope map (keyed off its now-stable address within tree); a name already
// pending there, or seen once already within this same tree, is wired to
// its partner and forgotten.
func (p *Parser) resolveRefs(tree inet.Tree, refs []identRef) {
	local := map[string]int{}
	for _, r := range refs {
		if partner, ok := p.scope[r.name]; ok {
			wire(partner, &tree[r.idx])
			delete(p.scope, r.name)
			continue
		}
		if firstIdx, ok := local[r.name]; ok {
			wire(&tree[firstIdx], &tree[r.idx])
			delete(local, r.name)
			continue
		}
		local[r.name] = r.idx
	}
	for name, idx := range local {
		p.scope[name] = &tree[idx]
	}
}

func wire(a, b *inet.Word) {
	*a = inet.Aux(b)
	*b = inet.Aux(a)
}
