package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-dyml/errors"
	"github.com/KimNorgaard/go-dyml/internal/lexer"
	"github.com/KimNorgaard/go-dyml/internal/token"
)

// Row is one entry of the row table.
type Row struct {
	Level  int
	Key    token.Span
	Value  token.Span
	Item   bool
	Line   int
	Column int
}

// Parser builds the row table from the lexer's line stream.
type Parser struct {
	l    *lexer.Lexer
	rows []Row
	err  error

	curLine token.Line
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Err returns the error that stopped the parse, if any.
func (p *Parser) Err() error {
	return p.err
}

// Parse reads every line and returns the finished table. The first
// malformed line stops the parse and no table is returned.
func (p *Parser) Parse() *Table {
	prev := -1 // level of the previous row, the root sits at -1

	for p.nextLine(); !p.curLineIs(token.EOF); p.nextLine() {
		if p.curLineIs(token.ILLEGAL) {
			p.fail(p.curLine.Msg)
			return nil
		}
		if p.curLine.Level > prev+1 {
			p.fail(fmt.Sprintf("indentation level jumps from %d to %d", prev, p.curLine.Level))
			return nil
		}
		p.appendRow()
		prev = p.curLine.Level
	}

	return link(p.rows)
}

func (p *Parser) nextLine() {
	p.curLine = p.l.NextLine()
}

func (p *Parser) appendRow() {
	ln := p.curLine
	p.rows = append(p.rows, Row{
		Level:  ln.Level,
		Key:    ln.Key,
		Value:  ln.Value,
		Item:   ln.Kind == token.ITEM,
		Line:   ln.Line,
		Column: ln.Column,
	})
}

func (p *Parser) fail(msg string) {
	p.err = &errors.ParseError{
		Kind:    errors.ErrMalformedIndent,
		Message: msg,
		Line:    p.curLine.Line,
		Column:  p.curLine.Column,
	}
	p.rows = nil
}

func (p *Parser) curLineIs(k token.Kind) bool {
	return p.curLine.Kind == k
}
