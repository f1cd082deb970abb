// Package infer implements the type-inference driver: it walks an
// expression tree bottom-up, assembles a raw type term via a vertex oracle,
// infers a tightened type for every argument placeholder, reduces, and
// closes the result under an outer lambda.
package infer

import (
	"github.com/typelattice/typelattice/internal/types"
	"github.com/typelattice/typelattice/internal/vertex"
)

// Oracle is the vertex→type lookup the driver consumes. *vertex.Registry
// satisfies it structurally.
type Oracle = vertex.Oracle

// AssembleRawTerm builds the unreduced raw type term for tree (step 1):
// post-order, a leaf emits TypeOf(v); an internal node emits
// application(TypeOf(v), childType...).
func AssembleRawTerm(tree *vertex.Tree, oracle Oracle) *types.Term {
	head := oracle.TypeOf(tree.V)
	if len(tree.Children) == 0 {
		return head
	}
	children := make([]*types.Term, 0, len(tree.Children)+1)
	children = append(children, head)
	for _, c := range tree.Children {
		children = append(children, AssembleRawTerm(c, oracle))
	}
	return types.Node(types.Application, children...)
}

// InferArgumentTypes computes the argument-type table Gamma (step 2) by
// intersecting, for every argument leaf of tree, the context type implied
// by its parent's declared input type at that sibling position.
func InferArgumentTypes(tree *vertex.Tree, oracle Oracle) *types.ArgTable {
	gamma := types.NewArgTable()
	for _, leaf := range tree.Leaves() {
		arg, ok := leaf.V.(vertex.Argument)
		if !ok {
			continue
		}
		kappa := contextType(tree, leaf, oracle)
		gamma.Set(arg.Index, types.Intersect(gamma.Get(arg.Index), kappa))
	}
	return gamma
}

func contextType(tree, leaf *vertex.Tree, oracle Oracle) *types.Term {
	parent, sibling := tree.Parent(leaf)
	if parent == nil {
		// the argument is the entire expression; nothing constrains it.
		return types.TUnknown
	}
	a := oracle.Arity(parent.V)
	if a < 0 || (a > 0 && sibling < a) {
		return oracle.InputTypeOf(parent.V, sibling)
	}
	// sibling index exceeds the parent's declared fixed arity: a driver
	// error, poisoning this argument's inferred type.
	return types.TIllFormed
}

// Close wraps reduced in an outer lambda binding gamma's argument types
// (step 4). If reduced is already a lambda, the argument types are spliced
// in front of its existing inputs.
func Close(reduced *types.Term, gamma *types.ArgTable) *types.Term {
	if gamma.Len() == 0 {
		return reduced
	}
	n := gamma.Max()
	inputs := make([]*types.Term, n)
	for i := 1; i <= n; i++ {
		inputs[i-1] = gamma.Get(i)
	}
	if reduced.Tag == types.Lambda && len(reduced.Children) > 0 {
		existing := reduced.Children[:len(reduced.Children)-1]
		output := reduced.Children[len(reduced.Children)-1]
		return types.LambdaOf(append(inputs, existing...), output)
	}
	return types.LambdaOf(inputs, reduced)
}

// InferType runs the full procedure (steps 1-4) directly, without going
// through the staged internal/pipeline runner, and returns the closed,
// reduced type of tree together with any diagnostics the reducer raised.
// Callers that want the intermediate Context (e.g. for tracing a single
// stage) should use pipeline.Infer instead; both paths call the same
// AssembleRawTerm/InferArgumentTypes/Close functions defined here.
func InferType(tree *vertex.Tree, oracle Oracle, sink types.Sink) (*types.Term, []types.Diagnostic) {
	raw := AssembleRawTerm(tree, oracle)
	gamma := InferArgumentTypes(tree, oracle)
	reduced, diags := types.Reduce(raw, gamma, sink)
	return Close(reduced, gamma), diags
}

// InferArity runs the full inference procedure over tree and returns the
// signed arity (types.Arity) of the resulting closed term: the report a
// caller consults to learn how many arguments tree actually expects without
// inspecting the inferred type term itself.
func InferArity(tree *vertex.Tree, oracle Oracle, sink types.Sink) int {
	closed, _ := InferType(tree, oracle, sink)
	return types.Arity(closed)
}

// ExplicitArity returns the largest argument index mentioned anywhere in
// tree, or 0 if it mentions none.
func ExplicitArity(tree *vertex.Tree) int {
	max := 0
	for _, leaf := range tree.Leaves() {
		if a, ok := leaf.V.(vertex.Argument); ok && a.Index > max {
			max = a.Index
		}
	}
	return max
}

// ContainsAllArgsUpTo reports whether every index in 1..n appears as an
// argument placeholder in tree and no placeholder exceeds n.
func ContainsAllArgsUpTo(tree *vertex.Tree, n int) bool {
	seen := make(map[int]bool, n)
	for _, leaf := range tree.Leaves() {
		a, ok := leaf.V.(vertex.Argument)
		if !ok {
			continue
		}
		if a.Index > n {
			return false
		}
		seen[a.Index] = true
	}
	for i := 1; i <= n; i++ {
		if !seen[i] {
			return false
		}
	}
	return true
}
