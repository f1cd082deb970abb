package types

import "sort"

// ArgTable is the argument-type table Gamma threaded through reduction and
// inference: a sparse map from placeholder index to the type term currently
// bound to it. A missing entry defaults to unknown.
type ArgTable struct {
	m map[int]*Term
}

// NewArgTable returns an empty table.
func NewArgTable() *ArgTable {
	return &ArgTable{m: make(map[int]*Term)}
}

// Get returns the term bound to index n, defaulting to TUnknown.
func (a *ArgTable) Get(n int) *Term {
	if a == nil {
		return TUnknown
	}
	if t, ok := a.m[n]; ok {
		return t
	}
	return TUnknown
}

// Set binds index n to t.
func (a *ArgTable) Set(n int, t *Term) {
	a.m[n] = t
}

// Len reports how many indices have an explicit binding.
func (a *ArgTable) Len() int {
	if a == nil {
		return 0
	}
	return len(a.m)
}

// Keys returns the bound indices in ascending order, for deterministic
// closure in the inference driver.
func (a *ArgTable) Keys() []int {
	if a == nil {
		return nil
	}
	keys := make([]int, 0, len(a.m))
	for k := range a.m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Max returns the greatest bound index, or 0 if the table is empty.
func (a *ArgTable) Max() int {
	max := 0
	for _, k := range a.Keys() {
		if k > max {
			max = k
		}
	}
	return max
}
