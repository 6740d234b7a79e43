package checkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
)

func TestSchema_Call(t *testing.T) {
	t.Run("runs the stored block against the root param", func(t *testing.T) {
		s := checkit.New()
		var rootValue any
		s.Validate(func(_ *checkit.Context, root *checkit.Param) error {
			rootValue = root.Value()
			return nil
		})

		input := map[string]any{"k": "v"}
		_, err := s.Call(input)
		require.NoError(t, err)
		assert.Equal(t, input, rootValue)
	})

	t.Run("root param carries the configured name", func(t *testing.T) {
		s := checkit.New(checkit.WithName("payload"))
		var name any
		s.Validate(func(_ *checkit.Context, root *checkit.Param) error {
			name = root.Name()
			return nil
		})
		_, err := s.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, "payload", name)
	})

	t.Run("without a block the run succeeds", func(t *testing.T) {
		s := checkit.New()
		res, err := s.Call(map[string]any{"anything": true})
		require.NoError(t, err)
		assert.True(t, res.Success())
	})

	t.Run("block errors propagate to the caller", func(t *testing.T) {
		s := checkit.New()
		devErr := errors.New("misconfigured")
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return devErr })

		_, err := s.Call(nil)
		assert.ErrorIs(t, err, devErr)
	})

	t.Run("Validate replaces the previous block", func(t *testing.T) {
		s := checkit.New()
		s.Validate(func(_ *checkit.Context, root *checkit.Param) error {
			root.AddError("from first block")
			return nil
		})
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return nil })

		res, err := s.Call(nil)
		require.NoError(t, err)
		assert.True(t, res.Success())
	})

	t.Run("MustCall panics on developer errors", func(t *testing.T) {
		s := checkit.New()
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error {
			return errors.New("boom")
		})
		assert.Panics(t, func() { s.MustCall(nil) })
	})
}

func TestSchema_Processors(t *testing.T) {
	appendMark := func(mark string) checkit.Middleware {
		return func(next checkit.Processor) checkit.Processor {
			return func(s *checkit.Schema, value any) (any, error) {
				v, err := next(s, value)
				if err != nil {
					return nil, err
				}
				return v.(string) + mark, nil
			}
		}
	}

	t.Run("later registrations run after earlier behavior", func(t *testing.T) {
		s := checkit.New()
		s.SetInputProcessor("a", appendMark("-a"))
		s.SetInputProcessor("b", appendMark("-b"))

		res, err := s.Call("raw")
		require.NoError(t, err)
		assert.Equal(t, "raw-a-b", res.Input())
	})

	t.Run("re-registering a slot replaces it", func(t *testing.T) {
		s := checkit.New()
		s.SetInputProcessor("a", appendMark("-old"))
		s.SetInputProcessor("a", appendMark("-new"))

		res, err := s.Call("raw")
		require.NoError(t, err)
		assert.Equal(t, "raw-new", res.Input())
	})

	t.Run("middleware that ignores next replaces prior behavior", func(t *testing.T) {
		s := checkit.New()
		s.SetInputProcessor("a", appendMark("-a"))
		s.SetInputProcessor("override", func(checkit.Processor) checkit.Processor {
			return func(_ *checkit.Schema, _ any) (any, error) {
				return "replaced", nil
			}
		})

		res, err := s.Call("raw")
		require.NoError(t, err)
		assert.Equal(t, "replaced", res.Input())
	})

	t.Run("output processing sees the processed input", func(t *testing.T) {
		s := checkit.New()
		s.SetInputProcessor("in", appendMark("-in"))
		s.SetOutputProcessor("out", appendMark("-out"))

		res, err := s.Call("raw")
		require.NoError(t, err)
		assert.Equal(t, "raw-in", res.Input())
		assert.Equal(t, "raw-in-out", res.Output())
	})

	t.Run("processor errors abort the run", func(t *testing.T) {
		s := checkit.New()
		procErr := errors.New("cannot process")
		s.SetInputProcessor("failing", func(checkit.Processor) checkit.Processor {
			return func(_ *checkit.Schema, _ any) (any, error) {
				return nil, procErr
			}
		})

		_, err := s.Call("raw")
		assert.ErrorIs(t, err, procErr)
	})
}

func TestSchema_Derive(t *testing.T) {
	t.Run("inherits the block by reference", func(t *testing.T) {
		base := checkit.New()
		base.Validate(func(_ *checkit.Context, root *checkit.Param) error {
			root.AddError("inherited")
			return nil
		})

		child := base.Derive()
		res, err := child.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"inherited"}, res.Messages())
	})

	t.Run("overriding the child block leaves the parent untouched", func(t *testing.T) {
		base := checkit.New()
		base.Validate(func(_ *checkit.Context, root *checkit.Param) error {
			root.AddError("base")
			return nil
		})

		child := base.Derive()
		child.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return nil })

		baseRes, err := base.Call(nil)
		require.NoError(t, err)
		childRes, err := child.Call(nil)
		require.NoError(t, err)

		assert.True(t, baseRes.Failure())
		assert.True(t, childRes.Success())
	})

	t.Run("inherits processor chains independently", func(t *testing.T) {
		base := checkit.New()
		base.SetInputProcessor("a", func(next checkit.Processor) checkit.Processor {
			return func(s *checkit.Schema, v any) (any, error) {
				v, err := next(s, v)
				if err != nil {
					return nil, err
				}
				return v.(string) + "-base", nil
			}
		})

		child := base.Derive()
		child.SetInputProcessor("b", func(next checkit.Processor) checkit.Processor {
			return func(s *checkit.Schema, v any) (any, error) {
				v, err := next(s, v)
				if err != nil {
					return nil, err
				}
				return v.(string) + "-child", nil
			}
		})

		baseRes, err := base.Call("raw")
		require.NoError(t, err)
		childRes, err := child.Call("raw")
		require.NoError(t, err)

		assert.Equal(t, "raw-base", baseRes.Input())
		assert.Equal(t, "raw-base-child", childRes.Input())
	})

	t.Run("records the parent", func(t *testing.T) {
		base := checkit.New()
		child := base.Derive()
		assert.Same(t, base, child.Parent())
		assert.Nil(t, base.Parent())
	})
}

func TestSchema_DepsResolver(t *testing.T) {
	t.Run("resolved values reach the block positionally", func(t *testing.T) {
		s := checkit.New()
		s.SetDepsResolver(func(_ *checkit.Schema) ([]any, error) {
			return []any{"repo", 42}, nil
		})

		var deps []any
		var second any
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			deps = ctx.Deps()
			second = ctx.Dep(1)
			return nil
		})

		_, err := s.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"repo", 42}, deps)
		assert.Equal(t, 42, second)
	})

	t.Run("out-of-range Dep returns nil", func(t *testing.T) {
		s := checkit.New()
		var missing any = "sentinel"
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			missing = ctx.Dep(5)
			return nil
		})
		_, err := s.Call(nil)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("resolver errors abort the run", func(t *testing.T) {
		s := checkit.New()
		resolverErr := errors.New("no such dependency")
		s.SetDepsResolver(func(_ *checkit.Schema) ([]any, error) {
			return nil, resolverErr
		})
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return nil })

		_, err := s.Call(nil)
		assert.ErrorIs(t, err, resolverErr)
	})
}
