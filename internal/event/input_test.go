// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestKeyPressTransitionsIdleToPressed(t *testing.T) {
	pressed := 0
	in := NewInput(Callbacks{OnKeyPressed: func(Key) { pressed++ }})
	q := NewQueue()
	q.Push(Event{Type: KeyPressed, Key: KeyA})

	in.BeginFrame()
	in.Apply(q)

	assert.Equal(t, KeyPressed, in.KeyState(KeyA))
	assert.Equal(t, 1, pressed)
}

func TestKeyHeldFiresRepeated(t *testing.T) {
	repeated := 0
	in := NewInput(Callbacks{OnKeyRepeated: func(Key) { repeated++ }})
	q := NewQueue()
	q.Push(Event{Type: KeyPressed, Key: KeyW})
	q.Push(Event{Type: KeyPressed, Key: KeyW})
	q.Push(Event{Type: KeyPressed, Key: KeyW})

	in.BeginFrame()
	in.Apply(q)

	assert.Equal(t, 2, repeated)
}

func TestKeyReleaseGoesIdleNextFrame(t *testing.T) {
	in := NewInput(Callbacks{})
	q := NewQueue()
	q.Push(Event{Type: KeyPressed, Key: KeyS})
	in.BeginFrame()
	in.Apply(q)
	require.Equal(t, KeyPressed, in.KeyState(KeyS))

	q.Push(Event{Type: KeyReleased, Key: KeyS})
	in.BeginFrame()
	in.Apply(q)
	assert.Equal(t, KeyReleased, in.KeyState(KeyS))

	in.BeginFrame()
	assert.Equal(t, KeyIdle, in.KeyState(KeyS))
}

// TestFocusLossPurge is spec.md §8 scenario S5: holding A, W, S then a
// deactivate event synthesizes exactly three releases, in key order,
// and the snapshot reports every key IDLE.
func TestFocusLossPurge(t *testing.T) {
	var order []Key
	in := NewInput(Callbacks{OnKeyReleased: func(k Key) { order = append(order, k) }})
	q := NewQueue()
	q.Push(Event{Type: KeyPressed, Key: KeyA})
	q.Push(Event{Type: KeyPressed, Key: KeyW})
	q.Push(Event{Type: KeyPressed, Key: KeyS})
	in.BeginFrame()
	in.Apply(q)

	q.Push(Event{Type: Deactivated})
	in.BeginFrame()
	in.Apply(q)

	assert.Equal(t, []Key{KeyA, KeyS, KeyW}, order)
	assert.False(t, in.Active())
	for k := Key(0); k < KeyCount; k++ {
		assert.Equal(t, KeyIdle, in.KeyState(k))
	}
}

func TestFocusLossPurgesMouseButtonsToo(t *testing.T) {
	released := 0
	in := NewInput(Callbacks{OnMouseButtonReleased: func(MouseButton) { released++ }})
	q := NewQueue()
	q.Push(Event{Type: MouseButtonPressed, Button: MouseButtonLeft})
	q.Push(Event{Type: MouseButtonPressed, Button: MouseButtonRight})
	in.BeginFrame()
	in.Apply(q)

	q.Push(Event{Type: Deactivated})
	in.BeginFrame()
	in.Apply(q)

	assert.Equal(t, 2, released)
	assert.False(t, in.IsMouseButtonPressed(MouseButtonLeft))
	assert.False(t, in.IsMouseButtonPressed(MouseButtonRight))
}

func TestMouseCursorDeltaAccumulatesPerFrame(t *testing.T) {
	var gotX, gotY, gotDX, gotDY int32
	calls := 0
	in := NewInput(Callbacks{OnMouseCursorMoved: func(x, y, dx, dy int32) {
		calls++
		gotX, gotY, gotDX, gotDY = x, y, dx, dy
	}})
	q := NewQueue()
	q.Push(Event{Type: MouseCursorMoved, X: 10, Y: 20, DX: 3, DY: 1})
	q.Push(Event{Type: MouseCursorMoved, X: 14, Y: 21, DX: 4, DY: 1})

	in.BeginFrame()
	in.Apply(q)

	assert.Equal(t, 1, calls, "one callback per frame even with multiple motion events")
	assert.Equal(t, int32(14), gotX)
	assert.Equal(t, int32(21), gotY)
	assert.Equal(t, int32(7), gotDX)
	assert.Equal(t, int32(2), gotDY)
}

func TestTouchLifecycle(t *testing.T) {
	in := NewInput(Callbacks{})
	q := NewQueue()
	q.Push(Event{Type: TouchStarted, TouchIndex: 2, X: 5, Y: 6})
	in.BeginFrame()
	in.Apply(q)

	touch := in.Touch(2)
	assert.True(t, touch.Pressed)
	assert.Equal(t, int32(5), touch.X)

	q.Push(Event{Type: TouchEnded, TouchIndex: 2})
	in.BeginFrame()
	in.Apply(q)
	assert.False(t, in.Touch(2).Pressed)
}

// TestKeyStateMachineProperty is spec.md §8 property 3, generalized over
// arbitrary press/release sequences for a single key via rapid.
func TestKeyStateMachineProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pressedN, repeatedN, releasedN := 0, 0, 0
		in := NewInput(Callbacks{
			OnKeyPressed:  func(Key) { pressedN++ },
			OnKeyRepeated: func(Key) { repeatedN++ },
			OnKeyReleased: func(Key) { releasedN++ },
		})

		wantPressed, wantRepeated, wantReleased := 0, 0, 0
		was := KeyIdle

		ops := rapid.SliceOfN(rapid.IntRange(0, 1), 1, 200).Draw(rt, "ops")
		for _, op := range ops {
			q := NewQueue()
			in.BeginFrame()
			if op == 0 {
				q.Push(Event{Type: KeyPressed, Key: KeyQ})
				switch was {
				case KeyIdle, KeyReleased:
					wantPressed++
					was = KeyPressed
				case KeyPressed:
					wantRepeated++
				}
			} else {
				q.Push(Event{Type: KeyReleased, Key: KeyQ})
				if was == KeyPressed {
					wantReleased++
					was = KeyReleased
				}
			}
			in.Apply(q)
			if was == KeyReleased {
				was = KeyIdle // next BeginFrame demotes it
			}
		}

		require.Equal(rt, wantPressed, pressedN)
		require.Equal(rt, wantRepeated, repeatedN)
		require.Equal(rt, wantReleased, releasedN)
	})
}
