package types

import "strconv"

// Term is an immutable node in a type tree. Operators (Lambda, Application,
// Union, ArgList) carry Children; primitives and Arg placeholders are
// leaves. Term values are never mutated after construction — every
// transformation in this package returns a freshly built Term, copying only
// the path being rewritten, per the persistent-tree design note.
type Term struct {
	Tag      Tag
	Index    int // meaningful only when Tag == Arg; the N in argN (N >= 1)
	Children []*Term
}

// Leaf constructs a primitive leaf term. Panics if tag is not a primitive.
func Leaf(tag Tag) *Term {
	if !tag.IsPrimitive() {
		panic("types: Leaf called with non-primitive tag " + tag.String())
	}
	return &Term{Tag: tag}
}

// Node constructs an operator term with the given children, in order.
func Node(tag Tag, children ...*Term) *Term {
	if !tag.IsOperator() {
		panic("types: Node called with non-operator tag " + tag.String())
	}
	return &Term{Tag: tag, Children: append([]*Term(nil), children...)}
}

// ArgN constructs the argN placeholder. Panics for n < 1: #0 and negative
// indices never reach the in-memory constructor except through a bug in a
// caller that bypassed the parser, which rejects them as a parse error
// instead.
func ArgN(n int) *Term {
	if n < 1 {
		panic("types: ArgN requires index >= 1, got " + strconv.Itoa(n))
	}
	return &Term{Tag: Arg, Index: n}
}

var (
	TBoolean              = Leaf(Boolean)
	TContin               = Leaf(Contin)
	TActionResult         = Leaf(ActionResult)
	TDefiniteObject       = Leaf(DefiniteObject)
	TActionDefiniteObject = Leaf(ActionDefiniteObject)
	TIndefiniteObject     = Leaf(IndefiniteObject)
	TMessage              = Leaf(Message)
	TActionSymbol         = Leaf(ActionSymbol)
	TWildCard             = Leaf(WildCard)
	TUnknown              = Leaf(Unknown)
	TIllFormed            = Leaf(IllFormed)
)

// LambdaOf constructs lambda(inputs..., output). A zero-input lambda is
// immediately collapsed to output, matching the reducer's own collapse
// rule, so callers never have to special-case it.
func LambdaOf(inputs []*Term, output *Term) *Term {
	if len(inputs) == 0 {
		return output
	}
	children := append(append([]*Term(nil), inputs...), output)
	return Node(Lambda, children...)
}

// VariadicLambda constructs lambda(fixed..., arg_list(tail), output).
func VariadicLambda(fixed []*Term, tail *Term, output *Term) *Term {
	inputs := append(append([]*Term(nil), fixed...), Node(ArgList, tail))
	return LambdaOf(inputs, output)
}

// IsLeaf reports whether t has no children slots at all (primitive or Arg).
func (t *Term) IsLeaf() bool {
	return t.Tag.IsPrimitive() || t.Tag == Arg
}

// Clone returns a deep, independent copy of t. Used where a caller needs to
// hand off a subtree that a subsequent in-place-looking helper will splice
// children into without risking aliasing the original.
func (t *Term) Clone() *Term {
	if t == nil {
		return nil
	}
	c := &Term{Tag: t.Tag, Index: t.Index}
	if t.Children != nil {
		c.Children = make([]*Term, len(t.Children))
		for i, ch := range t.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// withChildren returns a new Term sharing t's tag/index but with the given
// child slice, implementing the path-copying half of persistent rewriting.
func (t *Term) withChildren(children []*Term) *Term {
	return &Term{Tag: t.Tag, Index: t.Index, Children: children}
}

// OutputType returns R if t is lambda(..., R), else t itself.
func OutputType(t *Term) *Term {
	if t.Tag == Lambda && len(t.Children) > 0 {
		return t.Children[len(t.Children)-1]
	}
	return t
}

// InputTypes returns the input type list of t, with any trailing arg_list
// wrapper stripped to its element type, or nil if t is not a lambda.
func InputTypes(t *Term) []*Term {
	if t.Tag != Lambda || len(t.Children) == 0 {
		return nil
	}
	inputs := t.Children[:len(t.Children)-1]
	out := make([]*Term, len(inputs))
	for i, in := range inputs {
		if in.Tag == ArgList && len(in.Children) == 1 {
			out[i] = in.Children[0]
		} else {
			out[i] = in
		}
	}
	return out
}

// Arity returns the signed arity of t: positive k for a fixed-arity lambda
// of k inputs, negative -k for a variadic lambda with k-1 fixed inputs plus
// an arg_list tail, and 0 for a non-function term.
func Arity(t *Term) int {
	if t.Tag != Lambda || len(t.Children) == 0 {
		return 0
	}
	inputs := t.Children[:len(t.Children)-1]
	k := len(inputs)
	if k > 0 && inputs[k-1].Tag == ArgList {
		return -k
	}
	return k
}

// ConvertIndex clamps a sibling index to the last fixed input position when
// arity is variadic, so positions past the fixed prefix all resolve to the
// arg_list tail.
func ConvertIndex(arity, index int) int {
	if arity >= 0 {
		return index
	}
	last := -arity - 1
	if index > last {
		return last
	}
	return index
}

// primitiveCount counts top-level occurrences of tag among t's lambda
// inputs, excluding the output (or t itself if t is not a lambda).
func primitiveCount(t *Term, tag Tag) int {
	n := 0
	scan := func(x *Term) {
		if x.Tag == tag {
			n++
		}
	}
	if t.Tag == Lambda && len(t.Children) > 0 {
		for _, c := range t.Children[:len(t.Children)-1] {
			scan(c)
		}
	} else {
		scan(t)
	}
	return n
}

// ContinArity counts t's top-level contin inputs.
func ContinArity(t *Term) int { return primitiveCount(t, Contin) }

// BooleanArity counts t's top-level boolean inputs.
func BooleanArity(t *Term) int { return primitiveCount(t, Boolean) }

// ActionResultArity counts t's top-level action_result inputs.
func ActionResultArity(t *Term) int { return primitiveCount(t, ActionResult) }
