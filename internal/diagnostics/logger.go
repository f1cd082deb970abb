// Package diagnostics supplies the concrete types.Sink implementations used
// outside of tests: a log-backed Logger and an optional sqlite-backed
// Store, both kept separate from internal/types so the engine itself stays
// a pure, dependency-free library.
package diagnostics

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/typelattice/typelattice/internal/types"
)

// Logger is the production types.Sink: every diagnostic is written through
// a standard log.Logger, tagged with a per-session correlation ID so that
// diagnostics from concurrent inferences sharing one log stream can be told
// apart.
type Logger struct {
	log       *log.Logger
	SessionID uuid.UUID
}

// NewLogger creates a Logger writing to w with a freshly minted session ID.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		log:       log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		SessionID: uuid.New(),
	}
}

func (l *Logger) Emit(d types.Diagnostic) {
	l.log.Printf("session=%s procedure=%s reason=%q message=%q expected=%s observed=%s node=%d",
		l.SessionID, d.Procedure, d.Reason, d.Message, printOrNil(d.Expected), printOrNil(d.Observed), d.NodeIndex)
}

func printOrNil(t *types.Term) string {
	if t == nil {
		return "<nil>"
	}
	return types.Print(t)
}

var _ types.Sink = (*Logger)(nil)
