// Package parser contains the grammar-driven front-end for Apex source: a
// lexer, a token stream that supports position lookup, and a recursive
// descent parser that produces a grammar-shaped parse tree (the *Context
// types).
//
// The parse tree deliberately mirrors grammar productions rather than the
// language: optional alternatives are separate nilable fields, declaration
// modifiers sit beside the declarations they precede, and field groups stay
// grouped. The translate package consumes this tree through the typed
// accessors and the TokenStream, and is the only intended consumer.
//
// Apex is case-insensitive, so the lexer does not reserve keywords; every
// word is an identifier token and the parser matches keywords by folded
// comparison where the grammar calls for them.
package parser
