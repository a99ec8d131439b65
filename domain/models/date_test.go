package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(time.Date(2026, 3, 7, 15, 30, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-07"`, string(data), "time portion is dropped")

	var parsed DateOnly
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDateOnlyUnmarshalInvalid(t *testing.T) {
	var d DateOnly
	err := json.Unmarshal([]byte(`"07/03/2026"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestDateOnlyUnmarshalEmptyString(t *testing.T) {
	// "" ไม่ใช่ "ไม่มีค่า" — ถ้าปล่อยผ่านจะได้ zero date (0001-01-01)
	var d DateOnly
	err := json.Unmarshal([]byte(`""`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
	assert.True(t, d.IsZero())

	type payload struct {
		DueDate *DateOnly `json:"dueDate"`
	}
	var p payload
	require.Error(t, json.Unmarshal([]byte(`{"dueDate":""}`), &p))
}

func TestDateOnlyUnmarshalNull(t *testing.T) {
	var d *DateOnly
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Nil(t, d)

	// null ลง field ที่ไม่ใช่ pointer ปล่อยเป็น zero value ได้
	var direct DateOnly
	require.NoError(t, direct.UnmarshalJSON([]byte(`null`)))
	assert.True(t, direct.IsZero())
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-02", d.String())

	// driver ที่คืน string พร้อมส่วนเวลา
	var fromString DateOnly
	require.NoError(t, fromString.Scan("2026-01-02 00:00:00+00:00"))
	assert.Equal(t, "2026-01-02", fromString.String())

	var fromBytes DateOnly
	require.NoError(t, fromBytes.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", fromBytes.String())

	var bad DateOnly
	assert.Error(t, bad.Scan(42))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusTodo, StatusInProgress, StatusDone} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("PENDING").Valid())
	assert.False(t, Status("").Valid())
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Priority("URGENT").Valid())
}
