package hr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-10-20 is a Monday.
func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{"single weekday", NewDate(2025, time.October, 20), NewDate(2025, time.October, 20), 1},
		{"monday to wednesday", NewDate(2025, time.October, 20), NewDate(2025, time.October, 22), 3},
		{"full week", NewDate(2025, time.October, 20), NewDate(2025, time.October, 26), 5},
		{"two full weeks", NewDate(2025, time.October, 20), NewDate(2025, time.November, 2), 10},
		{"weekend only", NewDate(2025, time.October, 25), NewDate(2025, time.October, 26), 0},
		{"friday to monday", NewDate(2025, time.October, 24), NewDate(2025, time.October, 27), 2},
		{"end before start", NewDate(2025, time.October, 22), NewDate(2025, time.October, 20), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BusinessDays(c.start, c.end))
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.October, 20)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-20"`, string(data))

	var parsed Date
	err = json.Unmarshal([]byte(`"2025-12-31"`), &parsed)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", parsed.String())

	err = json.Unmarshal([]byte(`"31/12/2025"`), &parsed)
	assert.Error(t, err)
}

func TestParseLeaveType(t *testing.T) {
	_, err := ParseLeaveType("vacation")
	assert.NoError(t, err)

	_, err = ParseLeaveType("sabbatical")
	assert.Error(t, err)
}

func TestParseLeaveStatus(t *testing.T) {
	_, err := ParseLeaveStatus("approved")
	assert.NoError(t, err)

	_, err = ParseLeaveStatus("cancelled")
	assert.Error(t, err)
}
