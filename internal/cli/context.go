package cli

import "context"

type cliKey struct{}

// WithCLI returns a context carrying c. Commands executed with it reuse c
// instead of opening the workspace themselves.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI carried by ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		return &CLI{
			App:      c.App,
			Config:   c.Config,
			ctx:      ctx,
			borrowed: true,
		}, nil
	}
	return NewCLI(ctx)
}
