package contexts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/plugins/contexts"
)

func TestContexts(t *testing.T) {
	t.Run("blocks branch on the schema's tag", func(t *testing.T) {
		s := checkit.New()
		s.MustUse("contexts", contexts.Default("create"))

		s.Validate(func(ctx *checkit.Context, i *checkit.Param) error {
			return i.Param("password", func(p *checkit.Param) error {
				if contexts.Is(ctx, "create") && p.Value() == nil {
					p.AddError("must be present")
				}
				return nil
			})
		})

		res, err := s.Call(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, checkit.Messages{
			"password": []string{"must be present"},
		}, res.Messages())
	})

	t.Run("derived schemas override the tag independently", func(t *testing.T) {
		var tags []string
		create := checkit.New()
		create.MustUse("contexts", contexts.Default("create"))
		create.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			tags = append(tags, contexts.Current(ctx))
			return nil
		})

		update := create.Derive()
		update.MustUse("contexts", contexts.Default("update"))

		_, err := update.Call(nil)
		require.NoError(t, err)
		_, err = create.Call(nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"update", "create"}, tags)
	})

	t.Run("tag defaults to empty when unset", func(t *testing.T) {
		s := checkit.New()
		s.MustUse("contexts")

		var tag string
		s.Validate(func(ctx *checkit.Context, _ *checkit.Param) error {
			tag = contexts.Current(ctx)
			return nil
		})

		_, err := s.Call(nil)
		require.NoError(t, err)
		assert.Empty(t, tag)
	})

	t.Run("plain strings are accepted as tags", func(t *testing.T) {
		s := checkit.New()
		s.MustUse("contexts", "import")

		got, err := s.Invoke("validation_context")
		require.NoError(t, err)
		assert.Equal(t, "import", got)
	})

	t.Run("validation_context schema method reports the tag", func(t *testing.T) {
		s := checkit.New()
		s.MustUse("contexts", contexts.Default("update"))

		got, err := s.Invoke("validation_context")
		require.NoError(t, err)
		assert.Equal(t, "update", got)
	})

	t.Run("rejects declarations it does not understand", func(t *testing.T) {
		s := checkit.New()
		_, err := s.Use("contexts", 42)
		assert.Error(t, err)
	})
}
