// Package wrappers ships ready-made wrapper functions for common
// interception patterns: pass-through, serialization, logging, and
// invocation recording.
package wrappers

import (
	"github.com/chazu/veneer/wrap"
)

// PassThrough is the identity wrapper: the decorated callable behaves
// exactly as the undecorated one.
func PassThrough(wrapped wrap.Callable, instance interface{}, args wrap.Args, kwargs wrap.KWArgs) (interface{}, error) {
	return wrapped(args, kwargs)
}
