// internals/features/attendance/dto/attendance_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackmate_backend/internals/features/attendance/model"
)

func strPtr(s string) *string { return &s }

func TestCheckInRequest_CheckTypeDefault(t *testing.T) {
	r := CheckInRequest{}
	assert.Equal(t, model.CheckTypeManual, r.CheckType())

	r.Type = strPtr("auto")
	assert.Equal(t, model.CheckTypeAuto, r.CheckType())

	r.Type = strPtr("manual")
	assert.Equal(t, model.CheckTypeManual, r.CheckType())
}

func TestBreakStartRequest_TypeDefault(t *testing.T) {
	r := BreakStartRequest{}
	assert.Equal(t, model.BreakTypeOther, r.Type())

	r.BreakType = strPtr("lunch")
	assert.Equal(t, model.BreakTypeLunch, r.Type())

	r.BreakType = strPtr("tea")
	assert.Equal(t, model.BreakTypeTea, r.Type())
}

func TestHistoryQuery_ParseRange(t *testing.T) {
	q := HistoryQuery{FromDate: strPtr("2026-03-01"), ToDate: strPtr("2026-03-09")}
	from, to, bad := q.ParseRange()
	require.Empty(t, bad)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.True(t, from.Before(*to))
}

func TestHistoryQuery_ParseRange_Invalid(t *testing.T) {
	q := HistoryQuery{FromDate: strPtr("09-03-2026")}
	_, _, bad := q.ParseRange()
	assert.Equal(t, "from_date", bad)

	// rentang terbalik
	q = HistoryQuery{FromDate: strPtr("2026-03-09"), ToDate: strPtr("2026-03-01")}
	_, _, bad = q.ParseRange()
	assert.Equal(t, "to_date", bad)
}

func TestHistoryQuery_ParseRange_Empty(t *testing.T) {
	q := HistoryQuery{}
	from, to, bad := q.ParseRange()
	assert.Empty(t, bad)
	assert.Nil(t, from)
	assert.Nil(t, to)
}
