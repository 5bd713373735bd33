package proxy

import (
	"context"
	"io"
)

// ---------------------------------------------------------------------------
// Resource protocol (guarded entry/exit)
// ---------------------------------------------------------------------------

// Resource is implemented by targets with guarded entry and exit
// semantics. Exit receives the error (if any) from the guarded body and
// may replace it; returning the error unchanged propagates it.
type Resource interface {
	Enter(ctx context.Context) error
	Exit(ctx context.Context, err error) error
}

// Enter forwards resource entry to the target. Targets implementing
// only io.Closer enter trivially.
func (p *Proxy) Enter(ctx context.Context) error {
	switch t := p.target.(type) {
	case Resource:
		return t.Enter(ctx)
	case io.Closer:
		return nil
	}
	return &UnsupportedOpError{Op: "resource entry", Type: p.TargetType()}
}

// Exit forwards resource exit to the target. For io.Closer targets the
// close error takes precedence over a nil body error.
func (p *Proxy) Exit(ctx context.Context, err error) error {
	switch t := p.target.(type) {
	case Resource:
		return t.Exit(ctx, err)
	case io.Closer:
		if cerr := t.Close(); err == nil {
			return cerr
		}
		return err
	}
	return &UnsupportedOpError{Op: "resource exit", Type: p.TargetType()}
}

// With runs body between Enter and Exit. Exit always runs once Enter
// has succeeded, and sees the body's error.
func (p *Proxy) With(ctx context.Context, body func(ctx context.Context) error) error {
	if err := p.Enter(ctx); err != nil {
		return err
	}
	return p.Exit(ctx, body(ctx))
}
