package cells

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewInput(0)
		assert.Equal(t, 0, count.Value())

		count.SetValue(10)
		assert.Equal(t, 10, count.Value())
	})

	t.Run("zero values", func(t *testing.T) {
		err := NewInput[error](nil)
		assert.Nil(t, err.Value())

		err.SetValue(errors.New("oops"))
		assert.EqualError(t, err.Value(), "oops")

		err.SetValue(nil)
		assert.Nil(t, err.Value())
	})

	t.Run("goroutines get their own default graph", func(t *testing.T) {
		var wg sync.WaitGroup
		ids := make([]string, 2)

		for i := range ids {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				NewInput(i)
				ids[i] = DefaultGraph().ID()
			}()
		}

		wg.Wait()
		assert.NotEqual(t, ids[0], ids[1])
		assert.Equal(t, DefaultGraph().ID(), DefaultGraph().ID())
	})

	t.Run("writes from a callback are applied after the update", func(t *testing.T) {
		g := NewGraph()
		celsius := NewInputWith(g, 0.0)
		fahrenheit := NewInputWith(g, 32.0)

		toF := NewCompute1(celsius, func(c float64) float64 { return c*9/5 + 32 })
		fView := NewCompute1(fahrenheit, func(f float64) float64 { return f })

		mirror := NewCallback(func(c Cell) float64 {
			v := Read[float64](c)
			fahrenheit.SetValue(v)
			return v
		})
		toF.AddCallback(mirror)

		seen := NewCallback(func(c Cell) float64 { return Read[float64](c) })
		fView.AddCallback(seen)

		celsius.SetValue(100)

		assert.Equal(t, 212.0, fahrenheit.Value())
		assert.Equal(t, []float64{212}, mirror.Values())
		assert.Equal(t, []float64{212}, seen.Values())
	})
}
