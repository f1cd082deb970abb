package vertex

import "github.com/typelattice/typelattice/internal/types"

// Oracle is the vertex-type lookup the inference driver and its pipeline
// stages consume. *Registry satisfies it.
type Oracle interface {
	TypeOf(v Vertex) *types.Term
	OutputTypeOf(v Vertex) *types.Term
	InputTypeOf(v Vertex, i int) *types.Term
	Arity(v Vertex) int
}

var _ Oracle = (*Registry)(nil)
