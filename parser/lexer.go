package parser

import (
	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/reporter"
)

// lexer scans Apex source into tokens. It reports invalid input through the
// handler and keeps scanning, so one pass can surface every lexical error
// in a file.
type lexer struct {
	src  []byte
	pos  int
	line int
	col  int

	handler *reporter.Handler
	toks    []Token
}

func newLexer(src []byte, handler *reporter.Handler) *lexer {
	return &lexer{src: src, line: 1, col: 1, handler: handler}
}

// run scans the whole input and returns the token list, ending in EOF.
func (l *lexer) run() ([]Token, error) {
	for {
		if err := l.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if l.eof() {
			l.emit(TokenEOF, l.pos, l.line, l.col)
			return l.toks, nil
		}
		start, line, col := l.pos, l.line, l.col
		ch := l.peek()
		switch {
		case isIdentStart(ch):
			l.scanWord()
			l.emit(TokenIdent, start, line, col)
		case isDigit(ch):
			kind := l.scanNumber()
			l.emit(kind, start, line, col)
		case ch == '\'':
			if !l.scanString() {
				loc := ast.Location{StartLine: line, StartColumn: col}
				if err := l.handler.HandleErrorf(loc, "unterminated string literal"); err != nil {
					return nil, err
				}
			}
			l.emit(TokenStringLiteral, start, line, col)
		default:
			n := l.scanPunct()
			if n == 0 {
				loc := ast.Location{StartLine: line, StartColumn: col}
				if err := l.handler.HandleErrorf(loc, "invalid character %q", rune(ch)); err != nil {
					return nil, err
				}
				l.advance()
				continue
			}
			l.emit(TokenPunct, start, line, col)
		}
	}
}

func (l *lexer) emit(kind TokenKind, start, line, col int) {
	l.toks = append(l.toks, Token{
		Kind:   kind,
		Text:   string(l.src[start:l.pos]),
		Line:   line,
		Col:    col,
		Offset: start,
	})
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) advance() {
	if l.eof() {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *lexer) skipSpaceAndComments() error {
	for !l.eof() {
		switch {
		case isSpace(l.peek()):
			l.advance()
		case l.peek() == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		case l.peek() == '/' && l.peekAt(1) == '*':
			line, col := l.line, l.col
			l.advance()
			l.advance()
			for !l.eof() && !(l.peek() == '*' && l.peekAt(1) == '/') {
				l.advance()
			}
			if l.eof() {
				loc := ast.Location{StartLine: line, StartColumn: col}
				return l.handler.HandleErrorf(loc, "unterminated block comment")
			}
			l.advance()
			l.advance()
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) scanWord() {
	for !l.eof() && isIdentPart(l.peek()) {
		l.advance()
	}
}

func (l *lexer) scanNumber() TokenKind {
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
		if l.peek() == 'd' || l.peek() == 'D' {
			l.advance()
		}
		return TokenDoubleLiteral
	}
	if l.peek() == 'l' || l.peek() == 'L' {
		l.advance()
		return TokenLongLiteral
	}
	if l.peek() == 'd' || l.peek() == 'D' {
		l.advance()
		return TokenDoubleLiteral
	}
	return TokenIntLiteral
}

// scanString consumes a single-quoted string literal, quotes and escapes
// included. It returns false if the literal never terminates.
func (l *lexer) scanString() bool {
	l.advance() // opening quote
	for !l.eof() {
		switch l.peek() {
		case '\\':
			l.advance()
			l.advance()
		case '\n':
			return false
		case '\'':
			l.advance()
			return true
		default:
			l.advance()
		}
	}
	return false
}

// multi-character symbols, longest first. '>' is deliberately absent from
// every multi-character entry: the parser re-joins adjacent '>' tokens for
// shift operators so that nested generics like List<List<Integer>> close
// correctly.
var punctSymbols = []string{
	"<<=", "===", "!==",
	"<<", "<=", "<>", "==", "!=", "&&", "||",
	"++", "--", "+=", "-=", "*=", "/=", "&=", "|=", "^=", "=>",
	"{", "}", "(", ")", "[", "]", "<", ">", ";", ",", ".", ":", "?", "@",
	"=", "+", "-", "*", "/", "&", "|", "^", "!", "~",
}

func (l *lexer) scanPunct() int {
	rest := l.src[l.pos:]
	for _, sym := range punctSymbols {
		if len(rest) >= len(sym) && string(rest[:len(sym)]) == sym {
			for range sym {
				l.advance()
			}
			return len(sym)
		}
	}
	return 0
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
