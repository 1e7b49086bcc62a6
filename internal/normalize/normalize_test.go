package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpersona/console/internal/normalize"
)

func ids(t *testing.T, raws []json.RawMessage) []string {
	t.Helper()
	var out []string
	for _, raw := range raws {
		var rec struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(raw, &rec))
		out = append(out, rec.ID)
	}
	return out
}

func TestRecords(t *testing.T) {
	wrapped := []string{
		`[{"id":"d1"},{"id":"d2"}]`,
		`{"dashboards":[{"id":"d1"},{"id":"d2"}]}`,
		`{"data":[{"id":"d1"},{"id":"d2"}]}`,
		`{"items":[{"id":"d1"},{"id":"d2"}]}`,
	}

	t.Run("All supported shapes yield the same ordered list", func(t *testing.T) {
		for _, payload := range wrapped {
			raws, err := normalize.Records([]byte(payload), "dashboards")
			assert.NoError(t, err, "shape should be recognized: %s", payload)
			assert.Equal(t, []string{"d1", "d2"}, ids(t, raws), "element order should match the wrapped array for %s", payload)
		}
	})

	t.Run("Null, empty and empty-string payloads yield an empty list", func(t *testing.T) {
		for _, payload := range [][]byte{nil, []byte(""), []byte("null"), []byte(`""`)} {
			raws, err := normalize.Records(payload, "dashboards")
			assert.NoError(t, err, "empty payload should not error")
			assert.Empty(t, raws, "empty payload should yield an empty list")
		}
	})

	t.Run("Entity key takes priority over data and items", func(t *testing.T) {
		payload := `{"dashboards":[{"id":"d1"}],"data":[{"id":"x"}],"items":[{"id":"y"}]}`
		raws, err := normalize.Records([]byte(payload), "dashboards")
		require.NoError(t, err)
		assert.Equal(t, []string{"d1"}, ids(t, raws), "entity wrapper key should win")
	})

	t.Run("Non-array wrapper value falls through to the next key", func(t *testing.T) {
		payload := `{"dashboards":{"id":"not-a-list"},"data":[{"id":"d1"}]}`
		raws, err := normalize.Records([]byte(payload), "dashboards")
		require.NoError(t, err)
		assert.Equal(t, []string{"d1"}, ids(t, raws))
	})

	t.Run("Unrecognized object shape is an explicit error", func(t *testing.T) {
		_, err := normalize.Records([]byte(`{"a":{"id":"a"},"b":{"id":"b"}}`), "dashboards")
		assert.ErrorIs(t, err, normalize.ErrUnrecognizedShape, "keyed objects are not silently unwrapped in strict mode")
	})

	t.Run("Scalar payload is an explicit error", func(t *testing.T) {
		_, err := normalize.Records([]byte(`42`), "dashboards")
		assert.ErrorIs(t, err, normalize.ErrUnrecognizedShape)
	})
}

func TestRecordsLoose(t *testing.T) {
	t.Run("Keyed object falls back to its values in key order", func(t *testing.T) {
		raws := normalize.RecordsLoose([]byte(`{"a":{"id":"a"},"b":{"id":"b"}}`), "dashboards")
		assert.Equal(t, []string{"a", "b"}, ids(t, raws))
	})

	t.Run("Mixed primitive and object values keep only the objects", func(t *testing.T) {
		// The documented lossy case: primitives are dropped, object-typed
		// values survive even when the object was never a collection.
		payload := `{"count":2,"label":"all","first":{"id":"a"},"second":{"id":"b"},"flag":true}`
		raws := normalize.RecordsLoose([]byte(payload), "dashboards")
		assert.Equal(t, []string{"a", "b"}, ids(t, raws), "primitive-valued fields should be filtered out")
	})

	t.Run("Scalar payloads degrade to an empty list", func(t *testing.T) {
		assert.Empty(t, normalize.RecordsLoose([]byte(`"oops"`)))
		assert.Empty(t, normalize.RecordsLoose([]byte(`42`)))
		assert.Empty(t, normalize.RecordsLoose(nil))
	})

	t.Run("Known wrapper shapes behave exactly like Records", func(t *testing.T) {
		raws := normalize.RecordsLoose([]byte(`{"items":[{"id":"d1"},{"id":"d2"}]}`), "dashboards")
		assert.Equal(t, []string{"d1", "d2"}, ids(t, raws))
	})
}

func TestSlice(t *testing.T) {
	type dash struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	t.Run("Decodes wrapped payload into a typed slice", func(t *testing.T) {
		payload := `{"items":[{"id":"d1","title":"One"},{"id":"d2","title":"Two"}]}`
		got, err := normalize.Slice[dash]([]byte(payload), "dashboards")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "One", got[0].Title)
		assert.Equal(t, "d2", got[1].ID)
	})

	t.Run("Element decode failure is reported with its index", func(t *testing.T) {
		payload := `[{"id":"d1"},"not-an-object"]`
		_, err := normalize.Slice[dash]([]byte(payload))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "element 1")
	})
}
