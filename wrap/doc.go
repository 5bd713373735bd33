// Package wrap implements call-wrapping dispatchers on top of package
// proxy.
//
// A CallableWrapper proxies a callable target and, instead of calling
// it directly, hands every invocation to a wrapper function together
// with the resolved binding context: the instance (or class, or nil)
// the call was made through. Binding is resolved in two phases, the
// way method values come into existence only at selection time:
//
//   - at wrap time, Classify determines whether the target is a plain
//     function, a class-method or static-method marker, or a class;
//   - at access time, Bind produces a transient BoundCallableWrapper
//     carrying the resolved instance. Bound wrappers are created fresh
//     on every access and never cached.
//
// The Decorator factory is the primary producer of CallableWrappers.
package wrap
