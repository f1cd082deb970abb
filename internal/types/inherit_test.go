package types

import "testing"

func TestInheritUnknownIsTop(t *testing.T) {
	terms := []*Term{TBoolean, TContin, LambdaOf([]*Term{TBoolean}, TContin)}
	for _, term := range terms {
		if !Inherit(term, TUnknown) {
			t.Errorf("Inherit(%s, unknown) should hold", Print(term))
		}
	}
	// the ill_formed rule ranks above unknown-on-the-right.
	if Inherit(TIllFormed, TUnknown) {
		t.Errorf("Inherit(ill_formed, unknown) should not hold")
	}
	if Inherit(TUnknown, TBoolean) {
		t.Errorf("Inherit(unknown, boolean) should not hold")
	}
	if !Inherit(TUnknown, TUnknown) {
		t.Errorf("Inherit(unknown, unknown) should hold")
	}
}

func TestInheritIllFormedIsBottom(t *testing.T) {
	if Inherit(TIllFormed, TBoolean) {
		t.Errorf("ill_formed should not inherit from boolean")
	}
	if Inherit(TBoolean, TIllFormed) {
		t.Errorf("boolean should not inherit from ill_formed")
	}
}

func TestInheritUnionOnLeft(t *testing.T) {
	u := Node(Union, TBoolean, TContin)
	if Inherit(u, TBoolean) {
		t.Errorf("union(boolean, contin) should not inherit boolean")
	}
	if !Inherit(u, TUnknown) {
		t.Errorf("union(boolean, contin) should inherit unknown")
	}
}

func TestInheritUnionOnRight(t *testing.T) {
	u := Node(Union, TBoolean, TContin)
	if !Inherit(TBoolean, u) {
		t.Errorf("boolean should inherit union(boolean, contin)")
	}
	if Inherit(TActionResult, u) {
		t.Errorf("action_result should not inherit union(boolean, contin)")
	}
}

func TestInheritArrowContravariantCovariant(t *testing.T) {
	// inherit(lambda(unknown, B), lambda(C, B)) holds.
	a := LambdaOf([]*Term{TUnknown}, TBoolean)
	b := LambdaOf([]*Term{TContin}, TBoolean)
	if !Inherit(a, b) {
		t.Errorf("lambda(unknown, boolean) should inherit lambda(contin, boolean)")
	}
	// unequal arity never relates.
	c := LambdaOf([]*Term{TContin, TContin}, TBoolean)
	if Inherit(a, c) || Inherit(c, a) {
		t.Errorf("lambdas of unequal arity should not be related")
	}
}

func TestInheritApplicationOnLeftAlwaysFalse(t *testing.T) {
	app := Node(Application, LambdaOf([]*Term{TBoolean}, TBoolean), TBoolean)
	if Inherit(app, TUnknown) {
		t.Errorf("application node should not inherit even unknown, it is assumed to have been reduced first")
	}
}

func TestEqualIsReflexiveAndSymmetric(t *testing.T) {
	terms := []*Term{TBoolean, TUnknown, LambdaOf([]*Term{TBoolean}, TContin), Node(Union, TBoolean, TContin)}
	for _, term := range terms {
		if !Equal(term, term) {
			t.Errorf("Equal(%s, %s) should hold", Print(term), Print(term))
		}
	}
}

func TestWellFormed(t *testing.T) {
	if !WellFormed(TBoolean) {
		t.Errorf("boolean should be well formed")
	}
	if WellFormed(TIllFormed) {
		t.Errorf("ill_formed should not be well formed")
	}
	if WellFormed(LambdaOf([]*Term{TIllFormed}, TBoolean)) {
		t.Errorf("a lambda containing ill_formed should not be well formed")
	}
}
