package content

// AllPaths invalidates every rendered page.
const AllPaths = "*"

// Invalidator marks rendered public paths as stale. Calls are fire-and-forget.
type Invalidator interface {
	Invalidate(paths ...string)
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func(paths ...string)

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate(paths ...string) {
	f(paths...)
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(...string) {}

// NopInvalidator discards every signal.
var NopInvalidator Invalidator = nopInvalidator{}

func orNop(inv Invalidator) Invalidator {
	if inv == nil {
		return NopInvalidator
	}
	return inv
}
