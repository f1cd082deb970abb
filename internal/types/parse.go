package types

import (
	"strconv"
	"strings"
)

// operatorTokens maps every accepted spelling of an operator tag to that
// tag.
var operatorTokens = map[string]Tag{
	"->":              Lambda,
	"lambda":          Lambda,
	"lambda_type":     Lambda,
	"application":     Application,
	"application_type": Application,
	"union":           Union,
	"union_type":      Union,
	"arg_list":        ArgList,
	"arg_list_type":   ArgList,
}

// primitiveTokens maps every accepted spelling of a primitive tag,
// including the optional "_type" suffix and contin's "contin_t" alias.
var primitiveTokens = map[string]Tag{
	"boolean": Boolean, "boolean_type": Boolean,
	"contin": Contin, "contin_type": Contin, "contin_t": Contin,
	"action_result": ActionResult, "action_result_type": ActionResult,
	"definite_object": DefiniteObject, "definite_object_type": DefiniteObject,
	"action_definite_object": ActionDefiniteObject, "action_definite_object_type": ActionDefiniteObject,
	"indefinite_object": IndefiniteObject, "indefinite_object_type": IndefiniteObject,
	"message": Message, "message_type": Message,
	"action_symbol": ActionSymbol, "action_symbol_type": ActionSymbol,
	"wild_card": WildCard, "wild_card_type": WildCard,
	"unknown": Unknown, "unknown_type": Unknown,
	"ill_formed": IllFormed, "ill_formed_type": IllFormed,
}

// tokenize splits s on whitespace while keeping parentheses as their own
// tokens.
func tokenize(s string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

// Parse reads the canonical textual syntax into a Term. It returns a
// *ParseError for any malformed input, including #0 and any non-positive
// argument index.
func Parse(s string) (*Term, error) {
	toks := tokenize(s)
	p := &parser{toks: toks}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, &ParseError{Token: p.toks[p.pos], Pos: p.pos}
	}
	return t, nil
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) parseTerm() (*Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &ParseError{Token: "<eof>", Pos: p.pos}
	}

	switch {
	case tok == "(":
		head, ok := p.next()
		if !ok {
			return nil, &ParseError{Token: "<eof>", Pos: p.pos}
		}
		tag, isOp := operatorTokens[head]
		if !isOp {
			return nil, &ParseError{Token: head, Pos: p.pos - 1}
		}
		var children []*Term
		for {
			t, ok := p.peek()
			if !ok {
				return nil, &ParseError{Token: "<eof>", Pos: p.pos}
			}
			if t == ")" {
				p.pos++
				break
			}
			child, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if len(children) == 0 {
			return nil, &ParseError{Token: head, Pos: p.pos}
		}
		return Node(tag, children...), nil

	case tok == ")":
		return nil, &ParseError{Token: tok, Pos: p.pos - 1}

	case strings.HasPrefix(tok, "#"):
		n, err := strconv.Atoi(tok[1:])
		if err != nil || n < 1 {
			return nil, &ParseError{Token: tok, Pos: p.pos - 1}
		}
		return ArgN(n), nil

	default:
		if _, isOp := operatorTokens[tok]; isOp {
			// a bare operator token with no parens is malformed - operators
			// always require parenthesized children in this grammar.
			return nil, &ParseError{Token: tok, Pos: p.pos - 1}
		}
		if tag, isPrim := primitiveTokens[tok]; isPrim {
			return Leaf(tag), nil
		}
		return nil, &ParseError{Token: tok, Pos: p.pos - 1}
	}
}
