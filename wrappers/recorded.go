package wrappers

import (
	"reflect"
	"time"

	"github.com/chazu/veneer/journal"
	"github.com/chazu/veneer/wrap"
)

// Recorded returns a wrapper that records each invocation in j and
// delegates to next (PassThrough when next is nil). Recording failures
// never mask the call's own outcome.
func Recorded(j *journal.Journal, name string, next wrap.WrapperFunc) wrap.WrapperFunc {
	if next == nil {
		next = PassThrough
	}
	return func(wrapped wrap.Callable, instance interface{}, args wrap.Args, kwargs wrap.KWArgs) (interface{}, error) {
		start := time.Now()
		result, err := next(wrapped, instance, args, kwargs)

		inv := &journal.Invocation{
			Wrapper:  name,
			Binding:  bindingOf(instance),
			Instance: journal.Render(instance),
			Args:     journal.RenderAll(args),
			Start:    start,
			Duration: time.Since(start),
		}
		if instance == nil {
			inv.Instance = ""
		}
		if err != nil {
			inv.Err = err.Error()
		}
		_ = j.Record(inv)

		return result, err
	}
}

// bindingOf infers the binding context shape from the instance a
// wrapper observed: classes arrive as reflect.Type values.
func bindingOf(instance interface{}) string {
	switch instance.(type) {
	case nil:
		return "unbound"
	case reflect.Type:
		return "class"
	default:
		return "instance"
	}
}
