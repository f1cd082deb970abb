package vertex

import (
	_ "embed"
	"fmt"

	"github.com/typelattice/typelattice/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed builtins.yaml
var defaultBuiltinTable []byte

// Registry implements the vertex oracle the inference driver consumes:
// TypeOf, OutputTypeOf, InputTypeOf, Arity. Builtin signatures come from a
// YAML table rather than a hardcoded Go map, so extending the table doesn't
// require a Go code change.
type Registry struct {
	builtins map[string]*types.Term
}

// NewRegistry loads the embedded default builtin table.
func NewRegistry() (*Registry, error) {
	return LoadRegistry(defaultBuiltinTable)
}

// LoadRegistry parses a YAML document mapping builtin name to its textual
// type term into a Registry.
func LoadRegistry(doc []byte) (*Registry, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("vertex: parsing builtin table: %w", err)
	}
	builtins := make(map[string]*types.Term, len(raw))
	for name, src := range raw {
		term, err := types.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("vertex: builtin %q: %w", name, err)
		}
		builtins[name] = term
	}
	return &Registry{builtins: builtins}, nil
}

// Lookup reports whether name is a known builtin and, if so, its raw type.
func (r *Registry) Lookup(name string) (*types.Term, bool) {
	t, ok := r.builtins[name]
	return t, ok
}

// TypeOf returns the raw type term declared for v.
func (r *Registry) TypeOf(v Vertex) *types.Term {
	switch x := v.(type) {
	case Builtin:
		if t, ok := r.builtins[x.BuiltinName]; ok {
			return t
		}
		return types.TUnknown
	case Argument:
		return types.ArgN(x.Index)
	case ContinLiteral:
		return types.TContin
	case DefiniteObject:
		return types.TDefiniteObject
	case IndefiniteObject:
		return types.TIndefiniteObject
	case Message:
		return types.TMessage
	case Action:
		return types.TActionDefiniteObject
	case BuiltinAction:
		if t, ok := r.builtins[x.ActionName]; ok {
			return t
		}
		return types.TActionDefiniteObject
	case Perception:
		return types.TIndefiniteObject
	case ProcedureCall:
		if t, ok := r.builtins[x.ProcedureName]; ok {
			return t
		}
		return types.TUnknown
	case ActionSymbol:
		return types.TActionSymbol
	case WildCard:
		return types.TWildCard
	default:
		return types.TUnknown
	}
}

// OutputTypeOf returns the output type of TypeOf(v): the R of a lambda, or
// TypeOf(v) itself when v is not a function.
func (r *Registry) OutputTypeOf(v Vertex) *types.Term {
	return types.OutputType(r.TypeOf(v))
}

// InputTypeOf returns the i-th (0-based) input type of TypeOf(v): the
// fixed input at that position, or the element type of a trailing arg_list
// if v is variadic and i is past the fixed prefix, or unknown if i is out
// of range for a non-variadic v.
func (r *Registry) InputTypeOf(v Vertex, i int) *types.Term {
	t := r.TypeOf(v)
	inputs := types.InputTypes(t)
	if len(inputs) == 0 {
		return types.TUnknown
	}
	arity := types.Arity(t)
	idx := types.ConvertIndex(arity, i)
	if idx < 0 || idx >= len(inputs) {
		return types.TUnknown
	}
	return inputs[idx]
}

// Arity returns the signed arity of TypeOf(v).
func (r *Registry) Arity(v Vertex) int {
	return types.Arity(r.TypeOf(v))
}
