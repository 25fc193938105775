package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/popkit/internal/keyevent"
	"github.com/jmylchreest/popkit/internal/ref"
)

func dispatch(d *keyevent.Dispatcher, key string, phase keyevent.Phase) *keyevent.Event {
	e := &keyevent.Event{Key: key, Phase: phase}
	d.Dispatch(e)
	return e
}

func TestBinder_InvokesOnMatch(t *testing.T) {
	doc := keyevent.NewDispatcher()
	var got []*keyevent.Event
	b := Bind(keyevent.KeyEnter, func(e *keyevent.Event) { got = append(got, e) },
		WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	e := dispatch(doc, keyevent.KeyEnter, keyevent.PhaseDown)
	require.Len(t, got, 1)
	assert.Same(t, e, got[0], "callback receives the original event")

	dispatch(doc, keyevent.KeyEscape, keyevent.PhaseDown)
	assert.Len(t, got, 1, "non-matching key must not fire")
}

func TestBinder_AllPhases(t *testing.T) {
	for _, phase := range []keyevent.Phase{keyevent.PhaseDown, keyevent.PhasePress, keyevent.PhaseUp} {
		doc := keyevent.NewDispatcher()
		fired := 0
		b := Bind(keyevent.KeySpace, func(*keyevent.Event) { fired++ },
			WithDocument(doc), WithPhase(phase))
		b.Activate()

		dispatch(doc, keyevent.KeySpace, phase)
		assert.Equal(t, 1, fired, "phase %s", phase)

		// Other phases never reach the handler
		for _, other := range []keyevent.Phase{keyevent.PhaseDown, keyevent.PhasePress, keyevent.PhaseUp} {
			if other != phase {
				dispatch(doc, keyevent.KeySpace, other)
			}
		}
		assert.Equal(t, 1, fired, "phase %s", phase)

		b.Dispose()
	}
}

func TestBinder_SuppressDefault(t *testing.T) {
	doc := keyevent.NewDispatcher()
	b := Bind(keyevent.KeyEnter, nil, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	e := dispatch(doc, keyevent.KeyEnter, keyevent.PhaseDown)
	assert.True(t, e.DefaultPrevented(), "default is suppressed on match")

	e = dispatch(doc, "x", keyevent.PhaseDown)
	assert.False(t, e.DefaultPrevented(), "no suppression without a match")

	b.SetSuppressDefault(false)
	e = dispatch(doc, keyevent.KeyEnter, keyevent.PhaseDown)
	assert.False(t, e.DefaultPrevented())
}

func TestBinder_DisposeStopsDelivery(t *testing.T) {
	doc := keyevent.NewDispatcher()
	fired := 0
	b := Bind("q", func(*keyevent.Event) { fired++ }, WithDocument(doc))
	b.Activate()

	dispatch(doc, "q", keyevent.PhaseDown)
	require.Equal(t, 1, fired)

	b.Dispose()
	dispatch(doc, "q", keyevent.PhaseDown)
	assert.Equal(t, 1, fired, "no leaked subscription after dispose")
	assert.Equal(t, 0, doc.Len(keyevent.PhaseDown))
}

func TestBinder_DisposeIsIdempotent(t *testing.T) {
	doc := keyevent.NewDispatcher()
	b := Bind("q", nil, WithDocument(doc))
	b.Activate()

	b.Dispose()
	b.Dispose()
	assert.False(t, b.Active())
}

func TestBinder_TargetChangeMovesSubscription(t *testing.T) {
	doc := keyevent.NewDispatcher()
	nodeA := keyevent.NewDispatcher()
	nodeB := keyevent.NewDispatcher()
	target := ref.New[keyevent.Target]()
	target.Set(nodeA)

	fired := 0
	b := Bind(keyevent.KeyEnter, func(*keyevent.Event) { fired++ },
		WithDocument(doc), WithTarget(target))
	b.Activate()
	defer b.Dispose()

	dispatch(nodeA, keyevent.KeyEnter, keyevent.PhaseDown)
	require.Equal(t, 1, fired)

	target.Set(nodeB)
	b.Refresh()

	dispatch(nodeA, keyevent.KeyEnter, keyevent.PhaseDown)
	assert.Equal(t, 1, fired, "old target must be fully detached")

	dispatch(nodeB, keyevent.KeyEnter, keyevent.PhaseDown)
	assert.Equal(t, 2, fired)
}

func TestBinder_FallsBackToDocument(t *testing.T) {
	doc := keyevent.NewDispatcher()
	target := ref.New[keyevent.Target]()

	fired := 0
	b := Bind(keyevent.KeyEscape, func(*keyevent.Event) { fired++ },
		WithDocument(doc), WithTarget(target))
	b.Activate()
	defer b.Dispose()

	dispatch(doc, keyevent.KeyEscape, keyevent.PhaseDown)
	assert.Equal(t, 1, fired)

	// Node appears: Refresh moves the subscription off the document
	node := keyevent.NewDispatcher()
	target.Set(node)
	b.Refresh()

	dispatch(doc, keyevent.KeyEscape, keyevent.PhaseDown)
	assert.Equal(t, 1, fired)
	dispatch(node, keyevent.KeyEscape, keyevent.PhaseDown)
	assert.Equal(t, 2, fired)

	// Node goes away again: back to the document
	target.Clear()
	b.Refresh()
	dispatch(doc, keyevent.KeyEscape, keyevent.PhaseDown)
	assert.Equal(t, 3, fired)
}

func TestBinder_RefreshWithoutChangeKeepsSubscription(t *testing.T) {
	doc := keyevent.NewDispatcher()
	b := Bind("q", nil, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	b.Refresh()
	assert.Equal(t, 1, doc.Len(keyevent.PhaseDown))
}

func TestBinder_SetKeyDoesNotResubscribe(t *testing.T) {
	doc := keyevent.NewDispatcher()
	fired := 0
	b := Bind("a", func(*keyevent.Event) { fired++ }, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	require.Equal(t, 1, doc.Len(keyevent.PhaseDown))

	b.SetKey("b")
	assert.Equal(t, 1, doc.Len(keyevent.PhaseDown), "key change must not thrash the listener")

	dispatch(doc, "a", keyevent.PhaseDown)
	assert.Equal(t, 0, fired, "old key no longer matches")

	dispatch(doc, "b", keyevent.PhaseDown)
	assert.Equal(t, 1, fired)
}

func TestBinder_SetCallbackReadAtEventTime(t *testing.T) {
	doc := keyevent.NewDispatcher()
	first, second := 0, 0
	b := Bind("x", func(*keyevent.Event) { first++ }, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	b.SetCallback(func(*keyevent.Event) { second++ })
	dispatch(doc, "x", keyevent.PhaseDown)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestBinder_SetPhaseReinstalls(t *testing.T) {
	doc := keyevent.NewDispatcher()
	fired := 0
	b := Bind("x", func(*keyevent.Event) { fired++ }, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	b.SetPhase(keyevent.PhaseUp)
	assert.Equal(t, 0, doc.Len(keyevent.PhaseDown), "old phase subscription removed")
	assert.Equal(t, 1, doc.Len(keyevent.PhaseUp))

	dispatch(doc, "x", keyevent.PhaseDown)
	assert.Equal(t, 0, fired)
	dispatch(doc, "x", keyevent.PhaseUp)
	assert.Equal(t, 1, fired)
}

func TestBinder_SetPhaseWhileInactive(t *testing.T) {
	doc := keyevent.NewDispatcher()
	b := Bind("x", nil, WithDocument(doc))

	b.SetPhase(keyevent.PhaseUp)
	assert.False(t, b.Active())
	assert.Equal(t, 0, doc.Len(keyevent.PhaseUp))
}

func TestBinder_UnrecognizedKeyNeverFires(t *testing.T) {
	doc := keyevent.NewDispatcher()
	fired := 0
	b := Bind("NoSuchKey", func(*keyevent.Event) { fired++ }, WithDocument(doc))
	b.Activate()
	defer b.Dispose()

	for _, key := range []string{keyevent.KeyEnter, keyevent.KeySpace, "n", "NoSuchKe"} {
		dispatch(doc, key, keyevent.PhaseDown)
	}
	assert.Equal(t, 0, fired)
}
