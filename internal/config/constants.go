package config

// SourceFileExt is the extension for serialized type-term fixture files.
// Nothing in this module reads it; the bundled round-trip fixtures are txtar
// entries named *.term.
const SourceFileExt = ".type"

// SourceFileExtensions lists the fixture file extensions. Nothing in this
// module reads it.
var SourceFileExtensions = []string{".type", ".tt"}

// IsTestMode flags a run under a fixture test harness. Nothing in this
// module sets or reads it, so it stays false.
var IsTestMode = false

// DefaultBuiltinTablePath is the embedded path loaded by the vertex registry
// when no -builtins flag overrides it.
const DefaultBuiltinTablePath = "builtins.yaml"

// MaxReduceDepth is a depth threshold for pathologically deep terms.
// Nothing in this module reads it: the reducer and inheritance judge recurse
// directly, with no depth limit and no explicit work-stack.
const MaxReduceDepth = 4096

// Vertex kind names, returned by vertex.Kind.String.
const (
	VertexBuiltin       = "builtin"
	VertexArgument      = "argument"
	VertexContinLiteral = "contin_literal"
	VertexDefiniteObj   = "definite_object"
	VertexIndefiniteObj = "indefinite_object"
	VertexMessage       = "message"
	VertexAction        = "action"
	VertexBuiltinAction = "builtin_action"
	VertexPerception    = "perception"
	VertexProcedureRef  = "procedure_call"
	VertexActionSymbol  = "action_symbol"
	VertexWildCard      = "wild_card"
)
