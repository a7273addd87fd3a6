package viewport

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore(start)

	r := s.Get()
	r.UpperLeft[0] = 42

	assert.Equal(t, start, s.Get())
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore(start)

	s.Update(func(r *ComplexRect) {
		*r = Navigate(*r, 0.5, 0.5, ZoomIn)
	})

	assert.Equal(t, Navigate(start, 0.5, 0.5, ZoomIn), s.Get())
}

func TestStoreConcurrentUpdatesAreNotTorn(t *testing.T) {
	s := NewStore(ComplexRect{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Update(func(r *ComplexRect) {
					r.UpperLeft = r.UpperLeft.Add(mgl32.Vec2{1, 1})
					r.LowerRight = r.LowerRight.Add(mgl32.Vec2{1, 1})
				})
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 1000; j++ {
			r := s.Get()
			if r.UpperLeft != r.LowerRight {
				t.Errorf("torn read: %v", r)
				return
			}
		}
	}()

	wg.Wait()
	assert.Equal(t, mgl32.Vec2{8000, 8000}, s.Get().UpperLeft)
}

func TestStorePoisonedByPanic(t *testing.T) {
	s := NewStore(start)

	func() {
		defer func() {
			v := recover()
			require.NotNil(t, v)
			err, ok := v.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrPoisoned)
			assert.Contains(t, err.Error(), "boom")
		}()

		s.Update(func(r *ComplexRect) {
			r.UpperLeft[0] = 7
			panic("boom")
		})
	}()

	assert.PanicsWithValue(t, ErrPoisoned, func() { s.Get() })
	assert.PanicsWithValue(t, ErrPoisoned, func() { s.Update(func(*ComplexRect) {}) })
}

func TestStorePoisonKeepsLastCommit(t *testing.T) {
	s := NewStore(start)

	assert.Panics(t, func() {
		s.Update(func(r *ComplexRect) {
			r.LowerRight[1] = 3
			panic(errors.New("half written"))
		})
	})

	// The lock must have been released so a poisoned read panics instead of deadlocking.
	assert.Panics(t, func() { s.Get() })
	assert.Equal(t, start, s.rect)
}
