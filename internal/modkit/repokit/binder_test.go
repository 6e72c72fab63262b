package repokit

import (
	"context"
	"testing"

	"voicejournal/internal/platform/store"
	"voicejournal/internal/platform/testkit"
)

type fakeQ struct{}

func (fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }

var _ Queryer = (*fakeQ)(nil)

func TestBindFuncCallsThrough(t *testing.T) {
	t.Parallel()

	b := BindFunc[string](func(Queryer) string { return "bound" })
	if got := b.Bind(&fakeQ{}); got != "bound" {
		t.Fatalf("Bind = %q", got)
	}
}

func TestRequireQueryer(t *testing.T) {
	t.Parallel()

	var nilQ Queryer
	testkit.MustPanic(t, func() { RequireQueryer(nilQ) })

	q := &fakeQ{}
	if RequireQueryer(q) != Queryer(q) {
		t.Fatal("RequireQueryer must return its argument")
	}
}

func TestMustBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[int](func(Queryer) int { return 42 })

	var nilQ Queryer
	testkit.MustPanic(t, func() { MustBind[int](b, nilQ) })

	if got := MustBind[int](b, &fakeQ{}); got != 42 {
		t.Fatalf("MustBind = %d", got)
	}
}

func TestWithTxPassesQueryer(t *testing.T) {
	t.Parallel()

	called := false
	tx := txStub{}
	err := WithTx(context.Background(), tx, func(q Queryer) error {
		called = true
		if q == nil {
			t.Fatal("nil queryer inside tx")
		}
		return nil
	})
	testkit.MustNoErr(t, err)
	if !called {
		t.Fatal("tx body never ran")
	}
}

type txStub struct{ fakeQ }

func (txStub) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(&fakeQ{})
}
