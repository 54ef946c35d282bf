package cli

import (
	"os"

	routerctx "routerstat/internal/context"
)

// ContextEnvVar is the environment variable name for overriding the current context.
const ContextEnvVar = routerctx.ContextEnvVar

// Target is a resolved management endpoint. Transport and Settings are
// only set when the endpoint came from a context.
type Target struct {
	Endpoint  string
	Transport string
	// Context is the name of the context used, if any.
	Context  string
	Settings *routerctx.ContextSettings
}

// ResolveEndpoint resolves the endpoint using the precedence order:
//  1. explicit endpoint (--endpoint)
//  2. context name (--context)
//  3. ROUTERSTAT_CONTEXT
//  4. current-context from contexts.yaml
//
// An empty Target means the caller should fall back to the config file.
// A named context that does not exist is an error; an unreadable contexts
// file is not, unless a context was named.
func ResolveEndpoint(storage *routerctx.Storage, explicitEndpoint, contextName string) (Target, error) {
	if explicitEndpoint != "" {
		return Target{Endpoint: explicitEndpoint}, nil
	}

	if contextName != "" {
		return targetFromContext(storage, contextName)
	}

	if envContext := os.Getenv(ContextEnvVar); envContext != "" {
		return targetFromContext(storage, envContext)
	}

	current, err := storage.GetCurrentContext()
	if err != nil || current == nil {
		return Target{}, nil
	}
	return newTarget(current), nil
}

func targetFromContext(storage *routerctx.Storage, name string) (Target, error) {
	ctx, err := storage.GetContext(name)
	if err != nil {
		return Target{}, err
	}
	if ctx == nil {
		return Target{}, &routerctx.ContextNotFoundError{Name: name}
	}
	return newTarget(ctx), nil
}

func newTarget(ctx *routerctx.Context) Target {
	return Target{
		Endpoint:  ctx.Endpoint,
		Transport: ctx.Transport,
		Context:   ctx.Name,
		Settings:  ctx.Settings,
	}
}
