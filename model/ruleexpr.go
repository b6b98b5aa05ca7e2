// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package model

import (
	"strings"
	"unicode"

	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// RuleExpressionData is the data a rule boolean expression is evaluated
// against: which posture, its tempo, and whether it is marked.
type RuleExpressionData struct {
	Posture *Posture
	Tempo   float64
	Marked  bool
}

// ruleExprKind tags the variant held by a ruleExprNode.
type ruleExprKind int

const (
	exprAnd ruleExprKind = iota
	exprOr
	exprXor
	exprNot
	exprMarked
	exprTerminal
)

// ruleExprNode is one node of a parsed rule boolean expression, modelled
// as a tagged variant: and/or/xor/not/marked/terminal, matching the
// five-operator grammar of §4.1 instead of a class hierarchy.
type ruleExprNode struct {
	kind     ruleExprKind
	child1   *ruleExprNode
	child2   *ruleExprNode // and/or/xor only
	category CategoryID    // terminal only
}

// eval evaluates the node against data. marked(X) is "posture is in
// category X AND posture is marked"; the bare marked flag on data is
// otherwise independent of plain category membership, which is tested
// regardless of whether the posture is marked.
func (n *ruleExprNode) eval(data *RuleExpressionData) bool {
	switch n.kind {
	case exprAnd:
		return n.child1.eval(data) && n.child2.eval(data)
	case exprOr:
		return n.child1.eval(data) || n.child2.eval(data)
	case exprXor:
		return n.child1.eval(data) != n.child2.eval(data)
	case exprNot:
		return !n.child1.eval(data)
	case exprMarked:
		return data.Marked && n.child1.eval(data)
	case exprTerminal:
		return data.Posture.HasCategory(n.category)
	default:
		panic("model: unreachable rule expression kind")
	}
}

// ruleExprSymbolType is the lexical class of one token of a rule boolean
// expression.
type ruleExprSymbolType int

const (
	symInvalid ruleExprSymbolType = iota
	symOr
	symNot
	symXor
	symAnd
	symMarked
	symRightParen
	symLeftParen
	symString
)

// ruleExprParser parses the prefix-parenthesised grammar:
//
//	expr := '(' 'not' expr ')' | '(' 'marked' expr ')'
//	      | '(' expr ('and'|'or'|'xor') expr ')' | categoryName
type ruleExprParser struct {
	model   *Model
	src     string
	pos     int
	symbol  string
	symType ruleExprSymbolType
}

func newRuleExprParser(model *Model, src string) (*ruleExprParser, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, ttserr.NewParseError("boolean-expression", src, 0, "empty expression")
	}
	p := &ruleExprParser{model: model, src: trimmed}
	p.nextSymbol()
	return p, nil
}

func (p *ruleExprParser) finished() bool { return p.pos >= len(p.src) }

func isRuleExprSeparator(c byte) bool {
	return c == '(' || c == ')' || unicode.IsSpace(rune(c))
}

func (p *ruleExprParser) skipSpaces() {
	for !p.finished() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *ruleExprParser) nextSymbol() {
	p.skipSpaces()
	p.symbol = ""
	if p.finished() {
		p.symType = symInvalid
		return
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case ')':
		p.symType = symRightParen
	case '(':
		p.symType = symLeftParen
	default:
		sym := string(c)
		for !p.finished() && !isRuleExprSeparator(p.src[p.pos]) {
			sym += string(p.src[p.pos])
			p.pos++
		}
		p.symbol = sym
		switch sym {
		case "or":
			p.symType = symOr
		case "and":
			p.symType = symAnd
		case "not":
			p.symType = symNot
		case "xor":
			p.symType = symXor
		case "marked":
			p.symType = symMarked
		default:
			p.symType = symString
		}
	}
}

func (p *ruleExprParser) errAt(msg string) error {
	return ttserr.NewParseError("boolean-expression", p.src, p.pos-len(p.symbol), msg)
}

func (p *ruleExprParser) parse() (*ruleExprNode, error) {
	root, err := p.getNode()
	if err != nil {
		return nil, err
	}
	if p.symType != symInvalid {
		return nil, p.errAt("unexpected trailing input")
	}
	return root, nil
}

func (p *ruleExprParser) getNode() (*ruleExprNode, error) {
	switch p.symType {
	case symLeftParen:
		p.nextSymbol()
		var result *ruleExprNode
		switch p.symType {
		case symNot:
			p.nextSymbol()
			operand, err := p.getNode()
			if err != nil {
				return nil, err
			}
			result = &ruleExprNode{kind: exprNot, child1: operand}
		case symMarked:
			p.nextSymbol()
			operand, err := p.getNode()
			if err != nil {
				return nil, err
			}
			result = &ruleExprNode{kind: exprMarked, child1: operand}
		default:
			op1, err := p.getNode()
			if err != nil {
				return nil, err
			}
			var kind ruleExprKind
			switch p.symType {
			case symOr:
				kind = exprOr
			case symAnd:
				kind = exprAnd
			case symXor:
				kind = exprXor
			case symNot, symMarked:
				return nil, p.errAt("invalid operator")
			default:
				return nil, p.errAt("missing operator")
			}
			p.nextSymbol()
			op2, err := p.getNode()
			if err != nil {
				return nil, err
			}
			result = &ruleExprNode{kind: kind, child1: op1, child2: op2}
		}
		if p.symType != symRightParen {
			return nil, p.errAt("right parenthesis not found")
		}
		p.nextSymbol()
		return result, nil

	case symString:
		name := p.symbol
		catID, ok := p.model.resolveCategoryForExpr(name)
		if !ok {
			return nil, p.errAt("could not find category: " + name)
		}
		p.nextSymbol()
		return &ruleExprNode{kind: exprTerminal, category: catID}, nil

	case symOr, symNot, symXor, symAnd, symMarked:
		return nil, p.errAt("unexpected operator")
	case symRightParen:
		return nil, p.errAt("unexpected right parenthesis")
	default:
		return nil, p.errAt("missing symbol")
	}
}

// ParseRuleExpression parses one of a rule's boolean-expression strings
// against model, resolving category names to handles eagerly so
// evaluation never needs to touch the model again.
func ParseRuleExpression(model *Model, src string) (*ruleExprNode, error) {
	p, err := newRuleExprParser(model, src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}
