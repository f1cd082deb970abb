package vertex

import (
	"testing"

	"github.com/typelattice/typelattice/internal/types"
)

func TestDefaultRegistryLoadsEmbeddedTable(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := reg.Lookup("and"); !ok {
		t.Fatalf("expected builtin %q in default table", "and")
	}
}

func TestRegistryTypeOfKinds(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	tests := []struct {
		name string
		v    Vertex
		want *types.Term
	}{
		{"argument", Argument{Index: 2}, types.ArgN(2)},
		{"contin literal", ContinLiteral{Value: 3.0}, types.TContin},
		{"definite object", DefiniteObject{ObjectName: "x"}, types.TDefiniteObject},
		{"wild card", WildCard{}, types.TWildCard},
		{"unknown builtin", Builtin{BuiltinName: "nope"}, types.TUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.TypeOf(tt.v)
			if !types.StructurallyEqual(got, tt.want) {
				t.Errorf("TypeOf(%v) = %s, want %s", tt.v, types.Print(got), types.Print(tt.want))
			}
		})
	}
}

func TestRegistryInputAndOutputTypes(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	ifVertex := Builtin{BuiltinName: "if"}
	if out := reg.OutputTypeOf(ifVertex); !types.StructurallyEqual(out, types.TContin) {
		t.Errorf("OutputTypeOf(if) = %s, want contin", types.Print(out))
	}
	if in0 := reg.InputTypeOf(ifVertex, 0); !types.StructurallyEqual(in0, types.TBoolean) {
		t.Errorf("InputTypeOf(if, 0) = %s, want boolean", types.Print(in0))
	}

	andVertex := Builtin{BuiltinName: "and"}
	if in5 := reg.InputTypeOf(andVertex, 5); !types.StructurallyEqual(in5, types.TBoolean) {
		t.Errorf("InputTypeOf(and, 5) = %s, want boolean (variadic tail)", types.Print(in5))
	}
	if arity := reg.Arity(andVertex); arity >= 0 {
		t.Errorf("Arity(and) = %d, want negative (variadic)", arity)
	}
}

func TestLoadRegistryRejectsBadTerm(t *testing.T) {
	_, err := LoadRegistry([]byte("broken: \"(not_a_real_tag)\"\n"))
	if err == nil {
		t.Fatalf("expected an error parsing a malformed builtin table")
	}
}
