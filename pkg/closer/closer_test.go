package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCloseRunsInReverseOrder(t *testing.T) {
	c := NewCloser(0)

	var order []string
	c.AddSimple("first", func() error { order = append(order, "first"); return nil })
	c.AddSimple("second", func() error { order = append(order, "second"); return nil })

	require.NoError(t, c.Close(context.Background()))
	require.Equal(t, []string{"second", "first"}, order)
}

func TestCloseCollectsNamedErrors(t *testing.T) {
	c := NewCloser(0)
	c.AddSimple("redis", func() error { return errors.New("boom") })
	c.AddSimple("http", func() error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis: boom")
}

func TestCloseForcesRemainingOnTimeout(t *testing.T) {
	c := NewCloser(100 * time.Millisecond)

	c.Add("slow", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "shutdown interrupted after 0/1")
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCloser(0)
	calls := 0
	c.AddSimple("once", func() error { calls++; return nil })

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	require.Equal(t, 1, calls)
}
