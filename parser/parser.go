package parser

import (
	"fmt"
	"strings"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/reporter"
)

// Parse lexes and parses one Apex source file. Errors are reported through
// handler; if any were reported, Parse returns the handler's error and no
// tree. The returned TokenStream is the one the parse tree's token spans
// index into.
func Parse(filename string, source []byte, handler *reporter.Handler) (_ *CompilationUnitContext, _ *TokenStream, err error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	toks, lexErr := newLexer(source, handler).run()
	if lexErr != nil {
		return nil, nil, lexErr
	}
	if e := handler.Error(); e != nil {
		return nil, nil, e
	}

	p := &parser{toks: toks, src: source, handler: handler}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseAbort); !ok {
				panic(r)
			}
			err = handler.Error()
			if err == nil {
				err = reporter.ErrInvalidSource
			}
		}
	}()
	unit := p.parseCompilationUnit()
	if e := handler.Error(); e != nil {
		return nil, nil, e
	}
	return unit, &TokenStream{file: filename, toks: toks}, nil
}

// parseAbort unwinds the parser after a syntax error has been handed to the
// reporter.
type parseAbort struct{}

type parser struct {
	toks    []Token
	pos     int
	src     []byte
	handler *reporter.Handler
}

func (p *parser) cur() Token { return p.toks[p.pos] }

func (p *parser) peekTok(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) atPunct(sym string) bool {
	t := p.cur()
	return t.Kind == TokenPunct && t.Text == sym
}

// atWord matches an identifier token against a keyword, ignoring case.
func (p *parser) atWord(word string) bool {
	t := p.cur()
	return t.Kind == TokenIdent && strings.EqualFold(t.Text, word)
}

func (p *parser) atAnyWord(words ...string) bool {
	for _, w := range words {
		if p.atWord(w) {
			return true
		}
	}
	return false
}

func (p *parser) eatPunct(sym string) bool {
	if p.atPunct(sym) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) eatWord(word string) bool {
	if p.atWord(word) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectPunct(sym string) Token {
	if !p.atPunct(sym) {
		p.errf("expected %q, found %s", sym, p.cur().Describe())
	}
	return p.advance()
}

func (p *parser) expectWord(word string) Token {
	if !p.atWord(word) {
		p.errf("expected %q, found %s", word, p.cur().Describe())
	}
	return p.advance()
}

func (p *parser) expectIdent() *IdContext {
	if p.cur().Kind != TokenIdent {
		p.errf("expected identifier, found %s", p.cur().Describe())
	}
	start := p.pos
	t := p.advance()
	return &IdContext{span: span{start, start}, Text: t.Text}
}

// errf reports a syntax error at the current token and unwinds the parse.
func (p *parser) errf(format string, args ...any) {
	t := p.cur()
	loc := ast.Location{StartLine: t.Line, StartColumn: t.Col}
	_ = p.handler.HandleErrorf(loc, "%s", fmt.Sprintf(format, args...))
	panic(parseAbort{})
}

func (p *parser) spanFrom(start int) span {
	stop := p.pos - 1
	if stop < start {
		stop = start
	}
	return span{start, stop}
}

// adjacent reports whether token i+1 begins exactly where token i ends,
// with no whitespace between. The parser uses it to re-join '>' tokens
// into shift operators.
func (p *parser) adjacent(i int) bool {
	if i+1 >= len(p.toks) {
		return false
	}
	return p.toks[i+1].Offset == p.toks[i].Offset+len(p.toks[i].Text)
}

// angleOp recognizes the '>'-initial operators (">", ">=", ">>", ">>=",
// ">>>", ">>>=") from consecutive adjacent tokens. The lexer never merges
// '>' characters, so nested generics close correctly; the expression parser
// calls this to paste them back together. It returns the operator symbol
// and the number of tokens it spans.
func (p *parser) angleOp() (string, int) {
	if !p.atPunct(">") {
		return "", 0
	}
	n := 1
	for n < 3 && p.adjacent(p.pos+n-1) && p.peekTok(n).Kind == TokenPunct && p.peekTok(n).Text == ">" {
		n++
	}
	sym := strings.Repeat(">", n)
	if p.adjacent(p.pos+n-1) && p.peekTok(n).Kind == TokenPunct && p.peekTok(n).Text == "=" {
		return sym + "=", n + 1
	}
	return sym, n
}

func (p *parser) consume(n int) {
	p.pos += n
	if p.pos >= len(p.toks) {
		p.pos = len(p.toks) - 1
	}
}

// tryParseTypeRef speculatively parses a type reference. It returns nil and
// restores the position on failure, and never reports errors; callers use
// it to disambiguate declarations from expressions.
func (p *parser) tryParseTypeRef() *TypeRefContext {
	save := p.pos
	t := p.typeRefNoErr()
	if t == nil {
		p.pos = save
	}
	return t
}

func (p *parser) typeRefNoErr() *TypeRefContext {
	start := p.pos
	var parts []*TypeRefPartContext
	for {
		partStart := p.pos
		if p.cur().Kind != TokenIdent {
			return nil
		}
		nameTok := p.advance()
		part := &TypeRefPartContext{
			Name: &IdContext{span: span{partStart, partStart}, Text: nameTok.Text},
		}
		if p.atPunct("<") {
			p.advance()
			for {
				arg := p.typeRefNoErr()
				if arg == nil {
					return nil
				}
				part.Args = append(part.Args, arg)
				if p.eatPunct(",") {
					continue
				}
				break
			}
			if !p.eatPunct(">") {
				return nil
			}
		}
		part.span = p.spanFrom(partStart)
		parts = append(parts, part)
		if p.atPunct(".") && p.peekTok(1).Kind == TokenIdent {
			p.advance()
			continue
		}
		break
	}
	ref := &TypeRefContext{Parts: parts}
	for p.atPunct("[") && p.peekTok(1).Kind == TokenPunct && p.peekTok(1).Text == "]" {
		p.advance()
		p.advance()
		ref.Arrays++
	}
	ref.span = p.spanFrom(start)
	return ref
}

// parseTypeRef parses a required type reference, reporting an error when
// none is present.
func (p *parser) parseTypeRef() *TypeRefContext {
	t := p.tryParseTypeRef()
	if t == nil {
		p.errf("expected type, found %s", p.cur().Describe())
	}
	return t
}
