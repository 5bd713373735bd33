// Package proxy implements transparent object proxies.
//
// A Proxy wraps an arbitrary target value and forwards every operation
// it does not explicitly intercept to that target: attribute access,
// calls, comparisons, iteration, resource entry/exit, and the numeric
// and container operators the target's kind supports. Mutating an
// attribute through a proxy mutates the real target, and Unwrap
// recovers the original value by identity.
//
// This package contains:
//   - Proxy construction and the reserved wrapper-state slot
//   - Attribute resolution with two interchangeable engines
//     (reference and cached)
//   - Protocol operator forwarding (call, compare, iterate, index,
//     arithmetic, resource entry/exit)
//   - Weak proxies whose target may be reclaimed by the collector
package proxy
