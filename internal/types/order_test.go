package types

import "testing"

func TestCompareTotalOrder(t *testing.T) {
	a := TBoolean
	b := TContin
	if Compare(a, a) != 0 {
		t.Errorf("Compare(a, a) should be 0")
	}
	if Compare(a, b) >= 0 {
		t.Errorf("Compare(boolean, contin) should be negative")
	}
	if Compare(b, a) <= 0 {
		t.Errorf("Compare(contin, boolean) should be positive")
	}
}

func TestCompareArgByIndex(t *testing.T) {
	if Compare(ArgN(1), ArgN(2)) >= 0 {
		t.Errorf("Compare(#1, #2) should be negative")
	}
}

func TestCompareChildrenLexicographic(t *testing.T) {
	short := Node(Union, TBoolean)
	long := Node(Union, TBoolean, TContin)
	if Compare(short, long) >= 0 {
		t.Errorf("a prefix should sort before its extension")
	}
}
