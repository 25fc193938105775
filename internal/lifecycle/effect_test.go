package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffect_RunsOnFirstCall(t *testing.T) {
	var e Effect
	activated := 0

	e.Run(nil, func() Disposable {
		activated++
		return nil
	})
	assert.Equal(t, 1, activated)
}

func TestEffect_SkipsWhenDepsUnchanged(t *testing.T) {
	var e Effect
	activated, disposed := 0, 0
	activate := func() Disposable {
		activated++
		return Func(func() { disposed++ })
	}

	e.Run([]any{"keydown", 1}, activate)
	e.Run([]any{"keydown", 1}, activate)
	e.Run([]any{"keydown", 1}, activate)

	assert.Equal(t, 1, activated)
	assert.Equal(t, 0, disposed)
}

func TestEffect_DisposesBeforeReactivating(t *testing.T) {
	var e Effect
	var order []string

	e.Run([]any{1}, func() Disposable {
		order = append(order, "activate-1")
		return Func(func() { order = append(order, "dispose-1") })
	})
	e.Run([]any{2}, func() Disposable {
		order = append(order, "activate-2")
		return Func(func() { order = append(order, "dispose-2") })
	})

	require.Equal(t, []string{"activate-1", "dispose-1", "activate-2"}, order,
		"teardown completes before the new resource exists")
}

func TestEffect_LengthChangeReruns(t *testing.T) {
	var e Effect
	activated := 0
	activate := func() Disposable { activated++; return nil }

	e.Run([]any{"a"}, activate)
	e.Run([]any{"a", "b"}, activate)
	assert.Equal(t, 2, activated)
}

func TestEffect_Dispose(t *testing.T) {
	var e Effect
	disposed := 0

	e.Run(nil, func() Disposable {
		return Func(func() { disposed++ })
	})

	e.Dispose()
	assert.Equal(t, 1, disposed)

	// Idempotent
	e.Dispose()
	assert.Equal(t, 1, disposed)

	// A later Run reactivates even with the same deps
	activated := 0
	e.Run(nil, func() Disposable { activated++; return nil })
	assert.Equal(t, 1, activated)
}

func TestFunc_NilIsSafe(t *testing.T) {
	var f Func
	assert.NotPanics(t, func() { f.Dispose() })
}
