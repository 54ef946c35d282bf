package report

import (
	"context"
	"fmt"
	"strings"

	"routerstat/internal/management"
	"routerstat/pkg/logging"
)

// Selector names one report.
type Selector string

const (
	SelectGeneral     Selector = "g"
	SelectConnections Selector = "c"
	SelectLinks       Selector = "l"
	SelectNodes       Selector = "n"
	SelectAddresses   Selector = "a"
	SelectMemory      Selector = "m"
	SelectAutoLinks   Selector = "autolinks"
	SelectLinkRoutes  Selector = "linkroutes"
	SelectLog         Selector = "log"
)

// Selectors lists every selector in help order.
var Selectors = []Selector{
	SelectGeneral,
	SelectConnections,
	SelectLinks,
	SelectNodes,
	SelectAddresses,
	SelectMemory,
	SelectAutoLinks,
	SelectLinkRoutes,
	SelectLog,
}

var builders = map[Selector]builderFunc{
	SelectGeneral:     buildGeneral,
	SelectConnections: buildConnections,
	SelectLinks:       buildLinks,
	SelectNodes:       buildNodes,
	SelectAddresses:   buildAddresses,
	SelectMemory:      buildMemory,
	SelectAutoLinks:   buildAutoLinks,
	SelectLinkRoutes:  buildLinkRoutes,
	SelectLog:         buildLog,
}

// ParseSelector validates a selector name.
func ParseSelector(s string) (Selector, error) {
	sel := Selector(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := builders[sel]; !ok {
		names := make([]string, len(Selectors))
		for i, s := range Selectors {
			names[i] = string(s)
		}
		return "", fmt.Errorf("unknown report %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return sel, nil
}

// Dispatcher runs one report against a management client and renders it.
type Dispatcher struct {
	client   management.Client
	renderer Renderer
	options  Options
}

// NewDispatcher creates a dispatcher. The client and renderer are used for
// every Dispatch call.
func NewDispatcher(client management.Client, renderer Renderer, options Options) *Dispatcher {
	return &Dispatcher{
		client:   client,
		renderer: renderer,
		options:  options,
	}
}

// Build runs the builder for sel without rendering.
func (d *Dispatcher) Build(ctx context.Context, sel Selector) (Output, error) {
	build, ok := builders[sel]
	if !ok {
		return Output{}, fmt.Errorf("unknown report %q", sel)
	}

	logging.Debug("Report", "building report %q (limit=%d verbose=%t)", sel, d.options.limit(), d.options.Verbose)
	return build(ctx, d.client, d.options)
}

// Dispatch builds the report for sel and renders it. Nothing is rendered
// when the build fails.
func (d *Dispatcher) Dispatch(ctx context.Context, sel Selector) error {
	out, err := d.Build(ctx, sel)
	if err != nil {
		return err
	}

	return out.Render(d.renderer)
}
