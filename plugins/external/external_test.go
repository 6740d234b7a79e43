package external_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/plugins/external"
)

func newSchema(t *testing.T) *checkit.Schema {
	t.Helper()
	s := checkit.New()
	_, err := s.Use("external")
	require.NoError(t, err)
	return s
}

func TestValidate(t *testing.T) {
	t.Run("merges flat payloads", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("email", "not-an-email")

		require.NoError(t, external.Validate(p, func(v any) any {
			return []string{"is not a valid email"}
		}))
		assert.Equal(t, []string{"is not a valid email"}, p.Errors())
	})

	t.Run("merges nested payloads", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("profile", map[string]any{})

		require.NoError(t, external.Validate(p, func(v any) any {
			return checkit.Messages{"bio": []string{"is too long"}}
		}))
		assert.Equal(t, checkit.Messages{"bio": []string{"is too long"}}, p.Errors())
	})

	t.Run("normalizes loose payload shapes", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("profile", map[string]any{})

		require.NoError(t, external.Validate(p, func(v any) any {
			return map[string]any{"bio": []any{"is too long"}}
		}))
		assert.Equal(t, checkit.Messages{"bio": []string{"is too long"}}, p.Errors())
	})

	t.Run("nil payloads leave the param valid", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("email", "fine@example.com")

		require.NoError(t, external.Validate(p, func(v any) any { return nil }))
		assert.True(t, p.Valid())
	})

	t.Run("validator receives the param's value", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("email", "probe")

		var seen any
		require.NoError(t, external.Validate(p, func(v any) any {
			seen = v
			return nil
		}))
		assert.Equal(t, "probe", seen)
	})

	t.Run("fails when the plugin is not activated", func(t *testing.T) {
		s := checkit.New()
		p := s.NewParam("email", "x")

		err := external.Validate(p, func(v any) any { return nil })
		var unknownErr *checkit.UnknownMethodError
		require.ErrorAs(t, err, &unknownErr)
	})
}

func TestParamMethod_ValidateWith(t *testing.T) {
	t.Run("accepts a plain func", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("name", "")

		_, err := p.Invoke("validate_with", func(v any) any {
			return []string{"must be present"}
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"must be present"}, p.Errors())
	})

	t.Run("rejects non-function validators", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("name", "")

		_, err := p.Invoke("validate_with", "not a validator")
		assert.Error(t, err)
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		s := newSchema(t)
		p := s.NewParam("name", "")

		_, err := p.Invoke("validate_with")
		assert.Error(t, err)
	})
}
