package repokit

// Binder produces a repo of type T bound to a concrete query surface.
// Services hold a Binder and bind fresh repos per transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function into a Binder
type BindFunc[T any] func(Queryer) T

// Bind invokes f with q
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer guards against a nil query surface at bind time.
// A nil Queryer is a wiring bug, not a runtime condition
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind binds b to q after the nil check
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
