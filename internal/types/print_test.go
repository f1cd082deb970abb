package types

import "testing"

func TestPrintParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		term *Term
	}{
		{"boolean", TBoolean},
		{"unknown", TUnknown},
		{"ill_formed", TIllFormed},
		{"arg placeholder", ArgN(3)},
		{"fixed lambda", LambdaOf([]*Term{TBoolean, TContin}, TBoolean)},
		{"variadic lambda", VariadicLambda([]*Term{}, TBoolean, TBoolean)},
		{"nested union", Node(Union, TBoolean, TContin)},
		{"application", Node(Application, LambdaOf([]*Term{TBoolean}, TBoolean), TBoolean)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printed := Print(tt.term)
			parsed, err := Parse(printed)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", printed, err)
			}
			if !StructurallyEqual(parsed, tt.term) {
				t.Fatalf("round trip mismatch: printed %q, reparsed %q", printed, Print(parsed))
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"#0",
		"#-1",
		"#x",
		"(-> )",
		"(bogus_tag boolean)",
		"boolean)",
		"(-> boolean",
		"",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			if _, err := Parse(src); err == nil {
				t.Fatalf("Parse(%q) should have failed", src)
			}
		})
	}
}

func TestParseAliases(t *testing.T) {
	tests := []struct {
		src  string
		want Tag
	}{
		{"boolean", Boolean},
		{"contin_t", Contin},
		{"unknown_type", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.src, err)
			}
			if got.Tag != tt.want {
				t.Fatalf("Parse(%q) = tag %v, want %v", tt.src, got.Tag, tt.want)
			}
		})
	}
}
