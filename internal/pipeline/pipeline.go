// Package pipeline runs the inference driver as a sequence of named stages
// over a shared Context, one stage per step of the driver's procedure: raw
// term assembly, argument inference, reduction, closure.
package pipeline

import (
	"github.com/typelattice/typelattice/internal/infer"
	"github.com/typelattice/typelattice/internal/types"
	"github.com/typelattice/typelattice/internal/vertex"
)

// Context carries the driver's intermediate state as it flows through the
// pipeline. Each Processor reads what earlier stages filled in and fills in
// its own field; Diagnostics accumulates across every stage that can fail.
type Context struct {
	Tree   *vertex.Tree
	Oracle vertex.Oracle
	Sink   types.Sink

	Raw         *types.Term
	Gamma       *types.ArgTable
	Reduced     *types.Term
	Closed      *types.Term
	Diagnostics []types.Diagnostic
}

// Processor is one pipeline stage.
type Processor interface {
	Process(*Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(*Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline that runs processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, threading ctx through every stage in order.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from every stage,
		// not just the first one that fails.
	}
	return ctx
}

// AssembleStage fills ctx.Raw with the unreduced raw type term (step 1).
var AssembleStage = ProcessorFunc(func(ctx *Context) *Context {
	ctx.Raw = infer.AssembleRawTerm(ctx.Tree, ctx.Oracle)
	return ctx
})

// InferArgsStage fills ctx.Gamma with the inferred argument-type table
// (step 2).
var InferArgsStage = ProcessorFunc(func(ctx *Context) *Context {
	ctx.Gamma = infer.InferArgumentTypes(ctx.Tree, ctx.Oracle)
	return ctx
})

// ReduceStage fills ctx.Reduced and appends any diagnostics the reducer
// raised (step 3).
var ReduceStage = ProcessorFunc(func(ctx *Context) *Context {
	reduced, diags := types.Reduce(ctx.Raw, ctx.Gamma, ctx.Sink)
	ctx.Reduced = reduced
	ctx.Diagnostics = append(ctx.Diagnostics, diags...)
	return ctx
})

// CloseStage fills ctx.Closed with the outer-lambda-wrapped result (step 4).
var CloseStage = ProcessorFunc(func(ctx *Context) *Context {
	ctx.Closed = infer.Close(ctx.Reduced, ctx.Gamma)
	return ctx
})

// Standard is the canonical four-stage inference pipeline.
func Standard() *Pipeline {
	return New(AssembleStage, InferArgsStage, ReduceStage, CloseStage)
}

// Infer runs the standard pipeline over tree and returns the closed,
// reduced type together with every diagnostic collected along the way.
// internal/infer.InferType computes the same result by calling the step
// functions directly, for callers that don't need the intermediate Context.
func Infer(tree *vertex.Tree, oracle vertex.Oracle, sink types.Sink) (*types.Term, []types.Diagnostic) {
	ctx := Standard().Run(&Context{Tree: tree, Oracle: oracle, Sink: sink})
	return ctx.Closed, ctx.Diagnostics
}
