package guard_test

import (
	"errors"
	"testing"

	"linenflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("Thing must be created via NewThing constructor")

type thing struct {
	name  string
	guard guard.ConstructorGuard
}

func newThing(name string) thing {
	return thing{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}
}

func (t thing) Validate() error {
	return t.guard.Validate(errNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for a guard created via the constructor", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the custom error for a zero-value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(errNotConstructed)
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("should fall back to the default error when none is supplied", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	t.Run("should accept an object built through its constructor", func(t *testing.T) {
		obj := newThing("sheets")
		require.NoError(t, obj.Validate())
	})

	t.Run("should reject a zero-value object", func(t *testing.T) {
		var obj thing
		err := obj.Validate()
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("should reject direct struct initialization", func(t *testing.T) {
		obj := thing{name: "sheets"}
		err := obj.Validate()
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("should keep the guard valid on copies", func(t *testing.T) {
		obj := newThing("sheets")
		copied := obj
		require.NoError(t, copied.Validate())
	})
}
