package wrappers

import (
	"github.com/tliron/commonlog"

	"github.com/chazu/veneer/wrap"
)

var log = commonlog.GetLogger("veneer.wrappers")

// Logged returns a wrapper that logs each invocation and calls through.
// Errors are logged and returned unchanged; the wrapper never alters
// call results.
func Logged(name string) wrap.WrapperFunc {
	return func(wrapped wrap.Callable, instance interface{}, args wrap.Args, kwargs wrap.KWArgs) (interface{}, error) {
		log.Debugf("%s: calling (instance=%v, %d args)", name, instance, len(args))
		result, err := wrapped(args, kwargs)
		if err != nil {
			log.Errorf("%s: %v", name, err)
		}
		return result, err
	}
}
