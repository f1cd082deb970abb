package types

import "fmt"

// Tag identifies the kind of a Term node. The set is closed except for the
// Arg family, which is an open, countably infinite family of placeholders
// distinguished by Term.Index.
type Tag int

const (
	// Operators
	Lambda Tag = iota
	Application
	Union
	ArgList

	// Primitives
	Boolean
	Contin
	ActionResult
	DefiniteObject
	ActionDefiniteObject
	IndefiniteObject
	Message
	ActionSymbol
	WildCard
	Unknown
	IllFormed

	// Arg is the open argN family; Term.Index carries N.
	Arg
)

var tagNames = map[Tag]string{
	Lambda:               "lambda",
	Application:          "application",
	Union:                "union",
	ArgList:               "arg_list",
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
	Arg:                  "arg",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// IsOperator reports whether t is one of the tree-shaped operator tags.
func (t Tag) IsOperator() bool {
	switch t {
	case Lambda, Application, Union, ArgList:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether t is a leaf primitive tag (excludes Arg, which
// is a leaf but carries its own Index-keyed identity).
func (t Tag) IsPrimitive() bool {
	switch t {
	case Boolean, Contin, ActionResult, DefiniteObject, ActionDefiniteObject,
		IndefiniteObject, Message, ActionSymbol, WildCard, Unknown, IllFormed:
		return true
	default:
		return false
	}
}

// tagOrdinal gives a fixed, arbitrary but stable rank used by the total order
// over Terms (order.go). Arg ranks last among non-operator tags so that
// unions sort fixed primitives before placeholders.
var tagOrdinal = map[Tag]int{
	Lambda: 0, Application: 1, Union: 2, ArgList: 3,
	Boolean: 4, Contin: 5, ActionResult: 6, DefiniteObject: 7,
	ActionDefiniteObject: 8, IndefiniteObject: 9, Message: 10,
	ActionSymbol: 11, WildCard: 12, Unknown: 13, IllFormed: 14, Arg: 15,
}
