package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 offset", in: `"2024-03-05T10:20:30.123456+00:00"`, want: time.Date(2024, 3, 5, 10, 20, 30, 123456000, time.UTC)},
		{name: "zulu", in: `"2024-03-05T10:20:30Z"`, want: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)},
		{name: "naive", in: `"2024-03-05T10:20:30.5"`, want: time.Date(2024, 3, 5, 10, 20, 30, 500000000, time.UTC)},
		{name: "date only", in: `"2024-03-05"`, want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "null", in: `null`},
		{name: "empty", in: `""`},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
		{name: "number", in: `17`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.in), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = json.Marshal(Timestamp{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02T03:04:05Z"`, string(b))
}
