// Package pipeline runs an inspection as a sequence of stages sharing
// one context: inspect the packages, verify the manifest checks. Stages
// keep going after failures so a single run collects every diagnostic.
package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Processor is one stage of a run. It receives the shared context,
// records results or errors on it, and returns it for the next stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so one run reports both load and check
		// failures.
	}
	return ctx
}
