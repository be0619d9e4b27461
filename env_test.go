package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSetGet(t *testing.T) {
	env := NewEnv(nil)
	assert.NotNil(t, env)

	{
		v, ok := env.Get("foo")
		assert.False(t, ok)
		assert.Nil(t, v)
	}

	{
		env.Set("foo", NewIntValue(1))

		v, ok := env.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, int64(1), v.Int())
	}

	{
		env.Set("foo", NewStringValue("replaced"))

		v, ok := env.Get("foo")
		assert.True(t, ok)
		assert.Equal(t, ValueTypeString, v.Type)
		assert.Equal(t, 1, env.Len())
	}
}

func TestEnvChain(t *testing.T) {
	root := NewEnv(nil)
	root.Set("a", NewIntValue(1))

	frame := NewEnv(root)

	{
		v, ok := frame.Get("a")
		assert.True(t, ok)
		assert.Equal(t, int64(1), v.Int())
	}

	{
		// Shadowing binds in the child frame, the root binding stays put.
		frame.Set("a", NewIntValue(2))

		v, ok := frame.Get("a")
		assert.True(t, ok)
		assert.Equal(t, int64(2), v.Int())

		v, ok = root.Get("a")
		assert.True(t, ok)
		assert.Equal(t, int64(1), v.Int())
	}

	{
		// Bindings made in a frame are invisible above it.
		frame.Set("b", NewIntValue(3))

		_, ok := root.Get("b")
		assert.False(t, ok)
		assert.Equal(t, 1, root.Len())
		assert.Equal(t, 2, frame.Len())
	}
}
