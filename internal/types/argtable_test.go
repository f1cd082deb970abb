package types

import "testing"

func TestArgTableDefaultsToUnknown(t *testing.T) {
	a := NewArgTable()
	if got := a.Get(7); !StructurallyEqual(got, TUnknown) {
		t.Errorf("Get on unbound index = %s, want unknown", Print(got))
	}
}

func TestArgTableSetGetKeys(t *testing.T) {
	a := NewArgTable()
	a.Set(2, TContin)
	a.Set(1, TBoolean)
	if got := a.Get(2); !StructurallyEqual(got, TContin) {
		t.Errorf("Get(2) = %s, want contin", Print(got))
	}
	keys := a.Keys()
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 2 {
		t.Errorf("Keys() = %v, want [1 2]", keys)
	}
	if a.Max() != 2 {
		t.Errorf("Max() = %d, want 2", a.Max())
	}
}
