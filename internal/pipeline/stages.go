package pipeline

import (
	"fmt"

	"github.com/funvibe/funbuf/internal/config"
	"github.com/funvibe/funbuf/internal/inspect"
)

// InspectStage loads the manifest's packages and classifies their
// exported types, recording verdicts in the cache when one is attached.
type InspectStage struct{}

func (InspectStage) Process(ctx *Context) *Context {
	ins := &inspect.Inspector{Dir: ctx.Dir}
	if ctx.Cache != nil {
		ins.Store = ctx.Cache
	}
	report, err := ins.Inspect(ctx.Config.Packages...)
	if err != nil {
		ctx.addError(err)
		return ctx
	}
	ctx.Report = report

	if ctx.Cache != nil {
		for _, pr := range report.Packages {
			if err := ctx.Cache.PutPackage(pr); err != nil {
				ctx.addError(err)
			}
		}
	}
	return ctx
}

// VerifyStage matches the report against the manifest checks.
type VerifyStage struct{}

func (VerifyStage) Process(ctx *Context) *Context {
	if ctx.Report == nil {
		return ctx
	}
	for _, check := range ctx.Config.Checks {
		verdict, found := ctx.Report.Verdict(check.Type)
		if !found {
			ctx.addError(fmt.Errorf("check %s: type not found in inspected packages", check.Type))
			continue
		}
		if !accepts(check, verdict) {
			ctx.Failures = append(ctx.Failures, Failure{
				Type: check.Type,
				Want: check.Want,
				Got:  describe(verdict),
			})
		}
	}
	return ctx
}

// accepts maps the manifest's want values onto capabilities. "const"
// accepts mutable verdicts (widening); "mutable" does not accept const.
func accepts(check config.Check, v inspect.Verdict) bool {
	switch check.Want {
	case config.WantMutable:
		return v.Capability.Satisfies(inspect.CapabilityMutable)
	case config.WantConst:
		return v.Capability.Satisfies(inspect.CapabilityConst)
	case config.WantView:
		return v.View
	case config.WantNone:
		return v.Capability == inspect.CapabilityNone
	}
	return false
}

func describe(v inspect.Verdict) string {
	if v.View {
		return fmt.Sprintf("view (%s)", v.Capability)
	}
	return v.Capability.String()
}
