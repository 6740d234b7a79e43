package dependencies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/plugins/dependencies"
)

func TestPlugin_Injection(t *testing.T) {
	t.Run("resolved values reach the block in declared order", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("dependencies",
			dependencies.Registry{"repo": "the repo", "mailer": "the mailer"},
			dependencies.Inject{"mailer", "repo"},
		)
		require.NoError(t, err)

		var deps []any
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			deps = ctx.Deps()
			return nil
		})

		_, err = s.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"the mailer", "the repo"}, deps)
	})

	t.Run("func values resolve fresh per run", func(t *testing.T) {
		calls := 0
		s := checkit.New()
		_, err := s.Use("dependencies",
			dependencies.Provide("counter", func() any {
				calls++
				return calls
			}),
			dependencies.Inject{"counter"},
		)
		require.NoError(t, err)

		var got any
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			got = ctx.Dep(0)
			return nil
		})

		_, err = s.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		_, err = s.Call(nil)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("no injection list means no deps", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("dependencies", dependencies.Provide("repo", "unused"))
		require.NoError(t, err)

		var deps []any
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			deps = ctx.Deps()
			return nil
		})
		_, err = s.Call(nil)
		require.NoError(t, err)
		assert.Empty(t, deps)
	})
}

func TestPlugin_Errors(t *testing.T) {
	t.Run("unknown dependency names fail the run", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("dependencies", dependencies.Inject{"missing"})
		require.NoError(t, err)
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return nil })

		_, err = s.Call(nil)
		var unknownErr *dependencies.UnknownDependencyError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "missing", unknownErr.Name)
	})

	t.Run("non-list declarations are argument errors", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("dependencies", "not a declaration")
		assert.ErrorIs(t, err, dependencies.ErrInvalidInjectList)
	})

	t.Run("a corrupted injection option is an argument error at call time", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("dependencies")
		require.NoError(t, err)
		s.SetOpt("dependencies.inject", 42)
		s.Validate(func(_ *checkit.Context, _ *checkit.Param) error { return nil })

		_, err = s.Call(nil)
		assert.ErrorIs(t, err, dependencies.ErrInvalidInjectList)
	})
}

func TestPlugin_DerivedSchemas(t *testing.T) {
	t.Run("registries accumulate and children override independently", func(t *testing.T) {
		base := checkit.New()
		_, err := base.Use("dependencies",
			dependencies.Provide("repo", "base repo"),
			dependencies.Inject{"repo"},
		)
		require.NoError(t, err)
		base.Validate(func(ctx *checkit.Context, root *checkit.Param) error {
			root.AddError(ctx.Dep(0).(string))
			return nil
		})

		child := base.Derive()
		_, err = child.Use("dependencies", dependencies.Provide("repo", "child repo"))
		require.NoError(t, err)

		baseRes, err := base.Call(nil)
		require.NoError(t, err)
		childRes, err := child.Call(nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"base repo"}, baseRes.Messages())
		assert.Equal(t, []string{"child repo"}, childRes.Messages())
	})
}
