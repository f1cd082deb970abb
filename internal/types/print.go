package types

import (
	"strconv"
	"strings"
)

// canonicalName gives each operator/primitive tag its canonical printed
// token: "->" for lambda, the bare primitive name otherwise.
var canonicalName = map[Tag]string{
	Lambda:               "->",
	Application:          "application",
	Union:                "union",
	ArgList:              "arg_list",
	Boolean:              "boolean",
	Contin:               "contin",
	ActionResult:         "action_result",
	DefiniteObject:       "definite_object",
	ActionDefiniteObject: "action_definite_object",
	IndefiniteObject:     "indefinite_object",
	Message:              "message",
	ActionSymbol:         "action_symbol",
	WildCard:             "wild_card",
	Unknown:              "unknown",
	IllFormed:            "ill_formed",
}

// Print renders t in the canonical parenthesized-prefix textual syntax.
// parse(print(t)) = t for every t.
func Print(t *Term) string {
	var b strings.Builder
	print1(&b, t)
	return b.String()
}

func print1(b *strings.Builder, t *Term) {
	if t.Tag == Arg {
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(t.Index))
		return
	}
	name := canonicalName[t.Tag]
	if len(t.Children) == 0 {
		b.WriteString(name)
		return
	}
	b.WriteByte('(')
	b.WriteString(name)
	for _, c := range t.Children {
		b.WriteByte(' ')
		print1(b, c)
	}
	b.WriteByte(')')
}
