package wrappers

import (
	"reflect"
	"sync"

	"github.com/chazu/veneer/wrap"
)

// Synchronized returns a wrapper that serializes calls per binding
// context: calls bound to the same instance share a lock, calls with no
// usable instance share the wrapper-wide fallback lock. The underlying
// callable therefore never runs concurrently for one receiver.
func Synchronized() wrap.WrapperFunc {
	var fallback sync.Mutex
	var locks sync.Map // instance -> *sync.Mutex

	return func(wrapped wrap.Callable, instance interface{}, args wrap.Args, kwargs wrap.KWArgs) (interface{}, error) {
		mu := &fallback
		if key, ok := lockKey(instance); ok {
			actual, _ := locks.LoadOrStore(key, &sync.Mutex{})
			mu = actual.(*sync.Mutex)
		}
		mu.Lock()
		defer mu.Unlock()
		return wrapped(args, kwargs)
	}
}

// lockKey reports whether instance can key a lock map. Incomparable
// instances fall back to the shared lock rather than panicking.
func lockKey(instance interface{}) (interface{}, bool) {
	if instance == nil {
		return nil, false
	}
	t := reflect.TypeOf(instance)
	if t == nil || !t.Comparable() {
		return nil, false
	}
	return instance, true
}
