package parser

import "strconv"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokEq
	tokEra
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokNumber
	tokIdent
)

type token struct {
	kind tokenKind
	text string
	num  uint64
}

type lexer struct {
	src []byte
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []byte(src)}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// next returns the next token, advancing past it. Whitespace is skipped
// first; a zero-value token with kind tokEOF marks input exhaustion.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '=':
		l.pos++
		return token{kind: tokEq}, nil
	case c == '*':
		l.pos++
		return token{kind: tokEra}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen}, nil
	case c == '[':
		l.pos++
		return token{kind: tokLBracket}, nil
	case c == ']':
		l.pos++
		return token{kind: tokRBracket}, nil
	case c == '{':
		l.pos++
		return token{kind: tokLBrace}, nil
	case c == '}':
		l.pos++
		return token{kind: tokRBrace}, nil
	case c >= '0' && c <= '9':
		start := l.pos
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		n, err := strconv.ParseUint(string(l.src[start:l.pos]), 10, 32)
		if err != nil {
			return token{}, ErrExpectedNumber
		}
		return token{kind: tokNumber, num: n}, nil
	case isIdentStart(c):
		start := l.pos
		for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos])}, nil
	default:
		return token{}, ErrLex
	}
}
