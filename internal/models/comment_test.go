package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_DateAlwaysHasMilliseconds(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"whole second", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), "2024-05-01T12:30:00.000Z"},
		{"trailing zero", time.Date(2024, 5, 1, 12, 30, 0, 120*int(time.Millisecond), time.UTC), "2024-05-01T12:30:00.120Z"},
		{"sub-millisecond dropped", time.Date(2024, 5, 1, 12, 30, 0, 123456789, time.UTC), "2024-05-01T12:30:00.123Z"},
		{"converted to UTC", time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600)), "2024-05-01T12:30:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(Comment{Name: "Alice", Comment: "Hi", Date: tt.date})
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"Alice","comment":"Hi","date":"`+tt.want+`"}`, string(data))
		})
	}
}

func TestComment_UnmarshalJSON(t *testing.T) {
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","comment":"Hi","date":"2024-05-01T12:30:00.120Z"}`), &c))

	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "Hi", c.Comment)
	assert.True(t, c.Date.Equal(time.Date(2024, 5, 1, 12, 30, 0, 120*int(time.Millisecond), time.UTC)))

	var bad Comment
	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &bad))
}

func TestComment_SliceRoundTrip(t *testing.T) {
	in := []Comment{{Name: "Alice", Comment: "Hi", Date: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-05-01T12:30:00.000Z"`)

	var out []Comment
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.True(t, out[0].Date.Equal(in[0].Date))
}
