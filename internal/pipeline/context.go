package pipeline

import (
	"fmt"

	"github.com/funvibe/funbuf/internal/cache"
	"github.com/funvibe/funbuf/internal/config"
	"github.com/funvibe/funbuf/internal/inspect"
)

// Context carries the state of one inspection run between stages.
type Context struct {
	// Dir is the working directory for package loading.
	Dir string

	// Config is the loaded manifest.
	Config *config.Config

	// Cache is optional; when set, InspectStage reads stored verdicts
	// by package fingerprint before classifying and records fresh ones
	// after.
	Cache *cache.Cache

	// Report is filled by InspectStage.
	Report *inspect.Report

	// Failures is filled by VerifyStage.
	Failures []Failure

	// Errors collects stage-level errors (load failures, cache I/O).
	Errors []error
}

// Failure is one manifest check that did not hold.
type Failure struct {
	Type string
	Want config.Want
	Got  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: want %s, got %s", f.Type, f.Want, f.Got)
}

// Failed reports whether the run produced any error or check failure.
func (ctx *Context) Failed() bool {
	return len(ctx.Errors) > 0 || len(ctx.Failures) > 0
}

func (ctx *Context) addError(err error) {
	ctx.Errors = append(ctx.Errors, err)
}
