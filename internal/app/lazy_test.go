package app

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy(t *testing.T) {
	t.Run("builds once under concurrency", func(t *testing.T) {
		var (
			l     lazy[int]
			calls int
			mu    sync.Mutex
			wg    sync.WaitGroup
		)
		build := func() (int, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			return 42, nil
		}

		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := l.get(build)
				assert.NoError(t, err)
				assert.Equal(t, 42, v)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, calls)
		v, ok := l.peek()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("caches the error", func(t *testing.T) {
		var l lazy[string]
		boom := errors.New("boom")

		_, err := l.get(func() (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)

		_, err = l.get(func() (string, error) { return "never", nil })
		assert.ErrorIs(t, err, boom)

		_, ok := l.peek()
		assert.False(t, ok)
	})

	t.Run("peek does not build", func(t *testing.T) {
		var l lazy[*int]
		_, ok := l.peek()
		assert.False(t, ok)
	})

	t.Run("set wins before first get", func(t *testing.T) {
		var l lazy[int]
		l.set(7)
		v, err := l.get(func() (int, error) { return 9, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})
}
