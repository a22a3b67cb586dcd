package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallback(t *testing.T) {
	t.Run("detaching keeps the log", func(t *testing.T) {
		input := NewInput(1)
		output := NewCompute1(input, func(v int) int { return v + 1 })

		cb1 := NewCallback(func(c Cell) int { return Read[int](c) })
		cb2 := NewCallback(func(c Cell) int { return Read[int](c) })
		output.AddCallback(cb1)
		output.AddCallback(cb2)

		input.SetValue(31)
		assert.Equal(t, []int{32}, cb1.Values())
		assert.Equal(t, []int{32}, cb2.Values())

		output.RemoveCallback(cb1)
		cb3 := NewCallback(func(c Cell) int { return Read[int](c) })
		output.AddCallback(cb3)

		input.SetValue(41)
		assert.Equal(t, []int{32}, cb1.Values())
		assert.Equal(t, []int{32, 42}, cb2.Values())
		assert.Equal(t, []int{42}, cb3.Values())
	})

	t.Run("watches several compute cells", func(t *testing.T) {
		input := NewInput(1)
		plus1 := NewCompute1(input, func(v int) int { return v + 1 })
		minus1 := NewCompute1(input, func(v int) int { return v - 1 })

		cb := NewCallback(func(c Cell) int { return Read[int](c) })
		plus1.AddCallback(cb)
		minus1.AddCallback(cb)

		input.SetValue(10)
		assert.Equal(t, []int{11, 9}, cb.Values())

		plus1.RemoveCallback(cb)
		input.SetValue(20)
		assert.Equal(t, []int{11, 9, 19}, cb.Values())
	})

	t.Run("receives the changed cell", func(t *testing.T) {
		input := NewInput(1)
		output := NewCompute1(input, func(v int) int { return v * 3 })

		var got Cell
		cb := NewCallback(func(c Cell) string {
			got = c
			return "changed"
		})
		output.AddCallback(cb)

		input.SetValue(2)

		assert.Same(t, output, got)
		assert.Equal(t, []string{"changed"}, cb.Values())
	})

	t.Run("values returns a copy", func(t *testing.T) {
		input := NewInput(1)
		output := NewCompute1(input, func(v int) int { return v })
		cb := NewCallback(func(c Cell) int { return Read[int](c) })
		output.AddCallback(cb)

		input.SetValue(2)
		values := cb.Values()
		values[0] = 99

		assert.Equal(t, []int{2}, cb.Values())
	})

	t.Run("rejects a nil function", func(t *testing.T) {
		assert.PanicsWithError(t, "nil cell function: callback cell", func() {
			NewCallback[int](nil)
		})
	})
}
