package types

// Diagnostic describes one in-band failure the reducer recorded while
// rewriting a subterm to ill_formed. Procedure names the routine that
// raised it. NodeIndex holds a pre-order node index in the caller's
// expression tree when one is known; Reduce takes no tree context, so every
// diagnostic it records has NodeIndex -1.
type Diagnostic struct {
	Procedure string
	NodeIndex int
	Reason    Reason
	Expected  *Term
	Observed  *Term
	Message   string
}

// Sink receives diagnostics as the reducer emits them. Apart from NopSink
// below, it is implemented outside this package (see internal/diagnostics)
// so the engine stays a
// pure, dependency-free library — Reduce never fails if Sink is nil, it
// simply drops the diagnostic after collecting it in its own return value.
type Sink interface {
	Emit(Diagnostic)
}

// NopSink discards every diagnostic. Useful in tests that only care about
// the returned term, and as the default when a caller passes a nil Sink.
type NopSink struct{}

func (NopSink) Emit(Diagnostic) {}
