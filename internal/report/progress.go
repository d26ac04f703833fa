package report

import "context"

type progressKey struct{}

// ProgressFunc is told about each section as its fetch completes. It is
// called concurrently from the section goroutines.
type ProgressFunc func(section string, err error)

// WithProgress returns a context under which Build reports section
// completion to fn.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

func notify(ctx context.Context, section string, err error) {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		fn(section, err)
	}
}
