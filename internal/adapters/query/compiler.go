// Package query compiles command-line query tokens into entity predicates.
//
// The grammar, loosest binding first:
//
//	expr   := conj { "-or" conj }
//	conj   := unary { ["-and"] unary }        adjacency means -and
//	unary  := "-not" unary | "(" expr ")" | term
//	term   := "="KEYWORD | "in:"PLACE | "work:"ORG | "with:"ORG | "ex:"ORG
//	        | NAME                            case-folded substring match
//
// Terms are validated against the model at compile time, so a typo in a
// keyword or place name fails the query instead of silently matching nothing.
package query

import (
	"strings"

	"go.trai.ch/six/internal/core/domain"
	"go.trai.ch/six/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PredicateCompiler = (*Compiler)(nil)

// Compiler implements ports.PredicateCompiler with recursive descent over the
// token list.
type Compiler struct{}

// New returns a predicate compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile parses tokens against model.
func (c *Compiler) Compile(model *domain.Model, tokens []string) (domain.Predicate, error) {
	p := &parser{model: model, tokens: tokens}
	pred, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, syntaxErr("unexpected \""+p.peek()+"\"")
	}
	return pred, nil
}

func syntaxErr(msg string) error {
	return zerr.Wrap(domain.ErrBadArgument, msg)
}

type parser struct {
	model  *domain.Model
	tokens []string
	pos    int
}

func (p *parser) done() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expr() (domain.Predicate, error) {
	pred, err := p.conj()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek() == "-or" {
		p.next()
		right, err := p.conj()
		if err != nil {
			return nil, err
		}
		pred = pred.Or(right)
	}
	return pred, nil
}

func (p *parser) conj() (domain.Predicate, error) {
	pred, err := p.unary()
	if err != nil {
		return nil, err
	}
	for !p.done() {
		switch p.peek() {
		case "-or", ")":
			return pred, nil
		case "-and":
			p.next()
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		pred = pred.And(right)
	}
	return pred, nil
}

func (p *parser) unary() (domain.Predicate, error) {
	if p.done() {
		return nil, syntaxErr("expression ends early")
	}
	switch tok := p.next(); tok {
	case "-not":
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return inner.Not(), nil
	case "(":
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.next() != ")" {
			return nil, syntaxErr("missing \")\"")
		}
		return inner, nil
	case ")", "-and", "-or":
		return nil, syntaxErr("unexpected \"" + tok + "\"")
	default:
		return p.term(tok)
	}
}

func (p *parser) term(tok string) (domain.Predicate, error) {
	if kw, ok := strings.CutPrefix(tok, "="); ok {
		canonical, err := p.model.Keyword(kw)
		if err != nil {
			return nil, err
		}
		return func(e *domain.Entity) bool { return e.HasKeyword(canonical) }, nil
	}
	if name, ok := strings.CutPrefix(tok, "in:"); ok {
		place, err := p.model.LookupPlace(name)
		if err != nil {
			return nil, err
		}
		return func(e *domain.Entity) bool { return e.InPlace(place) }, nil
	}
	for prefix, kind := range linkTerms {
		if name, ok := strings.CutPrefix(tok, prefix); ok {
			org, err := p.model.FindOrganisation(name)
			if err != nil {
				return nil, err
			}
			return func(e *domain.Entity) bool { return e.LinkedTo(org, kind) }, nil
		}
	}
	return func(e *domain.Entity) bool { return e.Matches(tok) }, nil
}

var linkTerms = map[string]domain.LinkKind{
	"work:": domain.LinkWork,
	"with:": domain.LinkWith,
	"ex:":   domain.LinkEx,
}
