// Package vertex models the expression-tree alphabet consumed by the
// inference driver: a closed set of vertex kinds, an expression Tree built
// from them, and a Registry that answers the three oracle questions the
// driver needs (TypeOf, OutputTypeOf, InputTypeOf) by looking builtin
// vertices up in a data-driven table.
package vertex

import (
	"strconv"

	"github.com/typelattice/typelattice/internal/config"
)

// Kind identifies which of the twelve vertex alphabets a Vertex belongs to.
type Kind int

const (
	KindBuiltin Kind = iota
	KindArgument
	KindContinLiteral
	KindDefiniteObject
	KindIndefiniteObject
	KindMessage
	KindAction
	KindBuiltinAction
	KindPerception
	KindProcedureCall
	KindActionSymbol
	KindWildCard
)

var kindNames = map[Kind]string{
	KindBuiltin:        config.VertexBuiltin,
	KindArgument:       config.VertexArgument,
	KindContinLiteral:  config.VertexContinLiteral,
	KindDefiniteObject: config.VertexDefiniteObj,
	KindIndefiniteObject: config.VertexIndefiniteObj,
	KindMessage:        config.VertexMessage,
	KindAction:         config.VertexAction,
	KindBuiltinAction:  config.VertexBuiltinAction,
	KindPerception:     config.VertexPerception,
	KindProcedureCall:  config.VertexProcedureRef,
	KindActionSymbol:   config.VertexActionSymbol,
	KindWildCard:       config.VertexWildCard,
}

func (k Kind) String() string { return kindNames[k] }

// Vertex is the closed sum type of expression-tree leaves and operators.
// Concrete implementations are plain structs, one per vertex kind.
type Vertex interface {
	Kind() Kind
	Name() string // a human-readable label for diagnostics
}

type Builtin struct{ BuiltinName string }

func (b Builtin) Kind() Kind   { return KindBuiltin }
func (b Builtin) Name() string { return b.BuiltinName }

type Argument struct{ Index int }

func (a Argument) Kind() Kind   { return KindArgument }
func (a Argument) Name() string { return "#" + strconv.Itoa(a.Index) }

type ContinLiteral struct{ Value float64 }

func (c ContinLiteral) Kind() Kind   { return KindContinLiteral }
func (c ContinLiteral) Name() string { return strconv.FormatFloat(c.Value, 'g', -1, 64) }

type DefiniteObject struct{ ObjectName string }

func (d DefiniteObject) Kind() Kind   { return KindDefiniteObject }
func (d DefiniteObject) Name() string { return d.ObjectName }

type IndefiniteObject struct{ ObjectName string }

func (d IndefiniteObject) Kind() Kind   { return KindIndefiniteObject }
func (d IndefiniteObject) Name() string { return d.ObjectName }

type Message struct{ Text string }

func (m Message) Kind() Kind   { return KindMessage }
func (m Message) Name() string { return m.Text }

type Action struct{ ActionName string }

func (a Action) Kind() Kind   { return KindAction }
func (a Action) Name() string { return a.ActionName }

type BuiltinAction struct{ ActionName string }

func (a BuiltinAction) Kind() Kind   { return KindBuiltinAction }
func (a BuiltinAction) Name() string { return a.ActionName }

type Perception struct{ PerceptName string }

func (p Perception) Kind() Kind   { return KindPerception }
func (p Perception) Name() string { return p.PerceptName }

type ProcedureCall struct{ ProcedureName string }

func (p ProcedureCall) Kind() Kind   { return KindProcedureCall }
func (p ProcedureCall) Name() string { return p.ProcedureName }

type ActionSymbol struct{ SymbolName string }

func (a ActionSymbol) Kind() Kind   { return KindActionSymbol }
func (a ActionSymbol) Name() string { return a.SymbolName }

type WildCard struct{}

func (WildCard) Kind() Kind   { return KindWildCard }
func (WildCard) Name() string { return "_" }
