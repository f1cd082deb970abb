package types

import "sort"

// Reduce normalizes t against the argument-type table gamma, eliminating
// application nodes and collapsing redundant wrappers. It never panics on
// an ordinary type error: any mismatch
// rewrites the offending subterm to ill_formed in place (in the returned
// copy) and records a Diagnostic, so the caller can keep going and collect
// every failure in one pass. sink may be nil.
func Reduce(t *Term, gamma *ArgTable, sink Sink) (*Term, []Diagnostic) {
	if sink == nil {
		sink = NopSink{}
	}
	r := &reducer{gamma: gamma, sink: sink}
	out := r.reduce(t)
	return out, r.diags
}

type reducer struct {
	gamma *ArgTable
	sink  Sink
	diags []Diagnostic
}

func (r *reducer) emit(d Diagnostic) {
	r.diags = append(r.diags, d)
	r.sink.Emit(d)
}

func (r *reducer) reduce(t *Term) *Term {
	switch t.Tag {
	case Lambda:
		return r.reduceLambda(t)
	case Application:
		return r.reduceApplication(t)
	case Union:
		return r.reduceUnion(t)
	case ArgList:
		if len(t.Children) != 1 {
			panic("types: arg_list node must have exactly one child")
		}
		return Node(ArgList, r.reduce(t.Children[0]))
	case Arg:
		if t.Index < 1 {
			r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonMalformedPlaceholder, NodeIndex: -1, Message: "argument index must be >= 1"})
			return TIllFormed
		}
		return r.gamma.Get(t.Index)
	default:
		return t
	}
}

func (r *reducer) reduceLambda(t *Term) *Term {
	switch len(t.Children) {
	case 0:
		panic("types: lambda node must have at least one child")
	case 1:
		return r.reduce(t.Children[0])
	}
	children := make([]*Term, len(t.Children))
	for i, c := range t.Children {
		children[i] = r.reduce(c)
	}
	return t.withChildren(children)
}

func (r *reducer) reduceApplication(t *Term) *Term {
	if len(t.Children) == 0 {
		panic("types: application node must have at least a head child")
	}
	f := r.reduce(t.Children[0])
	actualsRaw := t.Children[1:]
	m := len(actualsRaw)
	if m == 0 {
		return f
	}
	if f.Tag != Lambda {
		r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonNotAFunction, Observed: f, NodeIndex: -1,
			Message: "application head is not a function"})
		return TIllFormed
	}

	k := len(f.Children) - 1
	inputs := f.Children[:k]
	variadic := k > 0 && inputs[k-1].Tag == ArgList

	if variadic {
		if m < k-1 {
			r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonArityMismatch, Observed: f, NodeIndex: -1,
				Message: "too few arguments for variadic function"})
			return TIllFormed
		}
	} else if m != k {
		r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonArityMismatch, Observed: f, NodeIndex: -1,
			Message: "wrong number of arguments"})
		return TIllFormed
	}

	actuals := make([]*Term, m)
	for i, a := range actualsRaw {
		actuals[i] = r.reduce(a)
	}

	schedule := append([]*Term(nil), inputs...)
	idx := 0

	for j := 0; j < m; j++ {
		aj := actuals[j]
		if idx >= len(schedule) {
			r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonArityMismatch, Observed: aj, NodeIndex: -1,
				Message: "too many arguments"})
			return TIllFormed
		}
		cur := schedule[idx]
		atTail := cur.Tag == ArgList
		expected := cur
		if atTail {
			expected = cur.Children[0]
		}

		if Inherit(aj, expected) {
			if !atTail {
				idx++
			}
			continue
		}

		if aj.Tag == Lambda && len(aj.Children) > 0 {
			out := aj.Children[len(aj.Children)-1]
			if Inherit(out, expected) {
				inlined := aj.Children[:len(aj.Children)-1]
				next := append([]*Term{}, schedule[:idx]...)
				next = append(next, inlined...)
				if atTail {
					next = append(next, schedule[idx:]...)
				} else {
					next = append(next, schedule[idx+1:]...)
				}
				schedule = next
				continue
			}
		}

		r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonInputMismatch, Expected: expected, Observed: aj, NodeIndex: -1,
			Message: "argument type does not inherit from the expected input type"})
		return TIllFormed
	}

	remaining := 0
	for i := idx; i < len(schedule); i++ {
		if schedule[i].Tag != ArgList {
			remaining++
		}
	}
	if remaining > 0 {
		r.emit(Diagnostic{Procedure: "reduce", Reason: ReasonArityMismatch, Observed: f, NodeIndex: -1,
			Message: "partial application left required inputs unsatisfied"})
		return TIllFormed
	}

	return f.Children[k]
}

func (r *reducer) reduceUnion(t *Term) *Term {
	reduced := make([]*Term, 0, len(t.Children))
	for _, c := range t.Children {
		rc := r.reduce(c)
		if rc.Tag == Union {
			// a nested union is flattened into its (already reduced) members
			reduced = append(reduced, rc.Children...)
			continue
		}
		reduced = append(reduced, rc)
	}

	sort.Slice(reduced, func(i, j int) bool { return Compare(reduced[i], reduced[j]) < 0 })

	kept := make([]*Term, 0, len(reduced))
	for i, x := range reduced {
		subsumed := false
		for j, y := range reduced {
			if i == j {
				continue
			}
			if Inherit(x, y) && (!Inherit(y, x) || j < i) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, x)
		}
	}

	dedup := kept[:0:0]
	for i, x := range kept {
		if i > 0 && StructurallyEqual(x, dedup[len(dedup)-1]) {
			continue
		}
		dedup = append(dedup, x)
	}

	if len(dedup) == 1 {
		return dedup[0]
	}
	return Node(Union, dedup...)
}
