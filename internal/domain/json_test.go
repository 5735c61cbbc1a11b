package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Config JSON `json:"config"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"config":{"board":"classic","dice":6}}`), &p))
	assert.JSONEq(t, `{"board":"classic","dice":6}`, string(p.Config))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"config":{"board":"classic","dice":6}}`, string(out))
}

func TestJSONEmptyMarshalsAsNull(t *testing.T) {
	out, err := json.Marshal(struct {
		Config JSON `json:"config"`
	}{})
	require.NoError(t, err)
	assert.Equal(t, `{"config":null}`, string(out))
}

func TestJSONScan(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, JSON(`{"a":1}`), j)

	require.NoError(t, j.Scan("null"))
	assert.Equal(t, JSON("null"), j)

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)

	assert.Error(t, j.Scan(42))
}

func TestJSONValue(t *testing.T) {
	v, err := JSON(`{"a":1}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	v, err = JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
