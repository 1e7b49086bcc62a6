package highlights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/highlights"
)

func TestCoerceDetail(t *testing.T) {
	t.Run("Strings and numbers pass through", func(t *testing.T) {
		assert.Equal(t, "shipped the parser", highlights.CoerceDetail([]byte(`"shipped the parser"`)).Text)
		assert.Equal(t, "42", highlights.CoerceDetail([]byte(`42`)).Text)
		assert.Equal(t, "3.5", highlights.CoerceDetail([]byte(`3.5`)).Text)
	})

	t.Run("Objects prefer summary then description", func(t *testing.T) {
		assert.Equal(t, "led a team", highlights.CoerceDetail([]byte(`{"summary":"led a team","score":3}`)).Text)
		assert.Equal(t, "built it", highlights.CoerceDetail([]byte(`{"description":"built it"}`)).Text)
	})

	t.Run("Arrays and summary-less objects render as compact JSON", func(t *testing.T) {
		assert.Equal(t, `["a","b"]`, highlights.CoerceDetail([]byte(`[ "a", "b" ]`)).Text)
		assert.Equal(t, `{"score":3}`, highlights.CoerceDetail([]byte(`{"score": 3}`)).Text)
	})

	t.Run("Null and absent values are empty", func(t *testing.T) {
		assert.True(t, highlights.CoerceDetail(nil).Empty())
		assert.True(t, highlights.CoerceDetail([]byte(`null`)).Empty())
		assert.Equal(t, "", highlights.CoerceDetail([]byte(`null`)).Text)
	})
}

func TestSanitize(t *testing.T) {
	t.Run("Mixed moment and talking point shapes", func(t *testing.T) {
		payload := []byte(`{
			"moments": [
				{"title": "Launch", "detail": "took v2 live"},
				{"title": "Growth", "detail": {"summary": "2x signups", "metric": 2}}
			],
			"talkingPoints": [
				"lead with the launch story",
				{"text": "mention the migration", "context": {"summary": "zero downtime"}}
			],
			"momentum": 87
		}`)

		got := highlights.Sanitize(payload)

		require.Len(t, got.Moments, 2)
		assert.Equal(t, "took v2 live", got.Moments[0].Detail.Text)
		assert.Equal(t, "2x signups", got.Moments[1].Detail.Text)

		require.Len(t, got.TalkingPoints, 2)
		assert.Equal(t, "lead with the launch story", got.TalkingPoints[0].Text.Text)
		assert.Equal(t, "mention the migration", got.TalkingPoints[1].Text.Text)
		assert.Equal(t, "zero downtime", got.TalkingPoints[1].Context.Text)

		assert.Equal(t, "87", got.Momentum.Text)
	})

	t.Run("Garbage payload yields an empty value", func(t *testing.T) {
		got := highlights.Sanitize([]byte(`"not an object"`))
		assert.Empty(t, got.Moments)
		assert.Empty(t, got.TalkingPoints)
	})
}

func TestInterpretReadiness(t *testing.T) {
	t.Run("Bare number", func(t *testing.T) {
		got := highlights.InterpretReadiness([]byte(`100`))
		assert.Equal(t, 100, got.Percent)
		assert.True(t, got.Ready)

		got = highlights.InterpretReadiness([]byte(`40`))
		assert.Equal(t, 40, got.Percent)
		assert.False(t, got.Ready)
	})

	t.Run("Percent computed from requirements when absent", func(t *testing.T) {
		payload := []byte(`{
			"requirements": [{"key":"bio","label":"Add a bio"},{"key":"skills","label":"Add skills"},{"key":"photo","label":"Add a photo"},{"key":"links","label":"Add links"}],
			"missing": [{"key":"photo","label":"Add a photo"}]
		}`)
		got := highlights.InterpretReadiness(payload)
		assert.Equal(t, 75, got.Percent)
		assert.False(t, got.Ready)
		require.Len(t, got.Missing, 1)
		assert.Equal(t, "photo", got.Missing[0].ID)
		assert.Equal(t, "Add a photo", got.Missing[0].Label)
	})

	t.Run("Explicit percent wins over requirement math", func(t *testing.T) {
		payload := []byte(`{"percent": 10, "requirements": [{"key":"a"}], "missing": []}`)
		got := highlights.InterpretReadiness(payload)
		assert.Equal(t, 10, got.Percent)
	})

	t.Run("Ready flag implies one hundred percent", func(t *testing.T) {
		got := highlights.InterpretReadiness([]byte(`{"ready": true}`))
		assert.Equal(t, 100, got.Percent)
		assert.True(t, got.Ready)
	})

	t.Run("String requirement items use the string as label", func(t *testing.T) {
		got := highlights.InterpretReadiness([]byte(`{"requirements": ["add a bio"], "missing": ["add a bio"]}`))
		require.Len(t, got.Missing, 1)
		assert.Equal(t, "0", got.Missing[0].ID)
		assert.Equal(t, "add a bio", got.Missing[0].Label)
	})

	t.Run("Non-object garbage degrades to zero", func(t *testing.T) {
		got := highlights.InterpretReadiness([]byte(`"broken"`))
		assert.Equal(t, 0, got.Percent)
		assert.False(t, got.Ready)
	})
}
