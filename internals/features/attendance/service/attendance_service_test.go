// internals/features/attendance/service/attendance_service_test.go
package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"trackmate_backend/internals/features/attendance/model"
	zoneModel "trackmate_backend/internals/features/zones/model"
)

/* =========================
   Fake repository in-memory
========================= */

type fakeRepo struct {
	attendances map[string]model.AttendanceModel // key: userID|YYYY-MM-DD
	breaks      []model.BreakLogModel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{attendances: map[string]model.AttendanceModel{}}
}

func (f *fakeRepo) key(userID uuid.UUID, date time.Time) string {
	return userID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeRepo) FindByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceModel, error) {
	rec, ok := f.attendances[f.key(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := rec
	return &cp, nil
}

func (f *fakeRepo) ClaimCheckIn(_ context.Context, rec *model.AttendanceModel) error {
	k := f.key(rec.UserID, time.Time(rec.Date))
	if cur, ok := f.attendances[k]; ok {
		if cur.CheckIn != nil {
			return ErrAlreadyCheckedIn
		}
		rec.AttendanceID = cur.AttendanceID
	}
	if rec.AttendanceID == uuid.Nil {
		rec.AttendanceID = uuid.New()
	}
	f.attendances[k] = *rec
	return nil
}

func (f *fakeRepo) FinalizeCheckOut(_ context.Context, rec *model.AttendanceModel) error {
	k := f.key(rec.UserID, time.Time(rec.Date))
	cur, ok := f.attendances[k]
	if !ok || cur.CheckIn == nil {
		return ErrNoCheckIn
	}
	if cur.CheckOut != nil {
		return ErrAlreadyCheckedOut
	}
	f.attendances[k] = *rec
	return nil
}

func (f *fakeRepo) OpenBreak(_ context.Context, b *model.BreakLogModel) error {
	for i := range f.breaks {
		if f.breaks[i].AttendanceID == b.AttendanceID && f.breaks[i].BreakEnd == nil {
			return ErrBreakAlreadyOpen
		}
	}
	if b.BreakLogID == uuid.Nil {
		b.BreakLogID = uuid.New()
	}
	f.breaks = append(f.breaks, *b)
	return nil
}

func (f *fakeRepo) FindOpenBreak(_ context.Context, attendanceID uuid.UUID) (*model.BreakLogModel, error) {
	for i := range f.breaks {
		if f.breaks[i].AttendanceID == attendanceID && f.breaks[i].BreakEnd == nil {
			cp := f.breaks[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CloseBreak(_ context.Context, breakID uuid.UUID, end time.Time, minutes int) error {
	for i := range f.breaks {
		if f.breaks[i].BreakLogID == breakID && f.breaks[i].BreakEnd == nil {
			e := end
			f.breaks[i].BreakEnd = &e
			f.breaks[i].BreakMinutes = minutes
			return nil
		}
	}
	return ErrNoActiveBreak
}

func (f *fakeRepo) SumClosedBreakMinutes(_ context.Context, attendanceID uuid.UUID) (int, error) {
	total := 0
	for i := range f.breaks {
		if f.breaks[i].AttendanceID == attendanceID && f.breaks[i].BreakEnd != nil {
			total += f.breaks[i].BreakMinutes
		}
	}
	return total, nil
}

func (f *fakeRepo) ListBreaks(_ context.Context, attendanceID uuid.UUID) ([]model.BreakLogModel, error) {
	var out []model.BreakLogModel
	for i := range f.breaks {
		if f.breaks[i].AttendanceID == attendanceID {
			out = append(out, f.breaks[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) History(_ context.Context, userID uuid.UUID, from, to *time.Time, limit int) ([]HistoryRow, error) {
	var rows []HistoryRow
	for _, rec := range f.attendances {
		if rec.UserID != userID {
			continue
		}
		d := time.Time(rec.Date)
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		count := 0
		for i := range f.breaks {
			if f.breaks[i].AttendanceID == rec.AttendanceID {
				count++
			}
		}
		rows = append(rows, HistoryRow{Attendance: rec, BreaksCount: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return time.Time(rows[i].Attendance.Date).After(time.Time(rows[j].Attendance.Date))
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeZones struct {
	zones []zoneModel.OfficeZoneModel
}

func (f *fakeZones) ListActiveZones(_ context.Context) ([]zoneModel.OfficeZoneModel, error) {
	return f.zones, nil
}

/* =========================
   Harness
========================= */

// Main Office: 40.7128, -74.0060, radius 100 m.
var (
	insideLat, insideLng   = 40.7127, -74.0060
	outsideLat, outsideLng = 40.7580, -73.9855
)

func newTestService(zones ...zoneModel.OfficeZoneModel) (*AttendanceService, *fakeRepo, *time.Time) {
	repo := newFakeRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	clock := &now
	svc := NewAttendanceService(repo, &fakeZones{zones: zones})
	svc.Now = func() time.Time { return *clock }
	return svc, repo, clock
}

func mainOffice() zoneModel.OfficeZoneModel {
	return zoneModel.OfficeZoneModel{
		Name:         "Main Office",
		Latitude:     40.7128,
		Longitude:    -74.0060,
		RadiusMeters: 100,
		IsActive:     true,
	}
}

/* =========================
   Check-in
========================= */

func TestCheckIn_InsideZone(t *testing.T) {
	svc, repo, _ := newTestService(mainOffice())
	userID := uuid.New()

	rec, err := svc.CheckIn(context.Background(), userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, model.AttendancePresent, rec.Status)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), *rec.CheckIn)
	assert.Len(t, repo.attendances, 1)
}

func TestCheckIn_NoActiveZones(t *testing.T) {
	svc, repo, _ := newTestService() // tanpa zona
	userID := uuid.New()

	_, err := svc.CheckIn(context.Background(), userID, insideLat, insideLng, model.CheckTypeManual)
	assert.ErrorIs(t, err, ErrNoActiveZones)
	assert.Empty(t, repo.attendances)
}

func TestCheckIn_OutsideZone(t *testing.T) {
	svc, repo, _ := newTestService(mainOffice())
	userID := uuid.New()

	_, err := svc.CheckIn(context.Background(), userID, outsideLat, outsideLng, model.CheckTypeManual)
	assert.ErrorIs(t, err, ErrOutsideZone)
	assert.Empty(t, repo.attendances)
}

func TestCheckIn_Duplicate(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Minute)
	existing, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	// timestamp pertama tidak boleh berubah
	require.NotNil(t, existing)
	assert.Equal(t, *first.CheckIn, *existing.CheckIn)
}

/* =========================
   Check-out
========================= */

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())

	_, err := svc.CheckOut(context.Background(), uuid.New(), insideLat, insideLng, model.CheckTypeManual)
	assert.ErrorIs(t, err, ErrNoCheckIn)
}

func TestCheckOut_TimeAccounting(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	// 09:00 check-in
	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	// 12:00–12:30 istirahat
	*clock = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	_, err = svc.BreakStart(ctx, userID, model.BreakTypeLunch, nil)
	require.NoError(t, err)
	*clock = time.Date(2026, 3, 9, 12, 30, 0, 0, time.UTC)
	_, err = svc.BreakEnd(ctx, userID)
	require.NoError(t, err)

	// 18:00 check-out → 540 - 30 = 510
	*clock = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	rec, err := svc.CheckOut(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)
	assert.Equal(t, 510, rec.TotalWorkMinutes)
	assert.Equal(t, 30, rec.TotalBreakMinutes)
	require.NotNil(t, rec.CheckOut)
}

func TestCheckOut_Twice(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	*clock = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	_, err = svc.CheckOut(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCheckOut_OpenBreakContributesZero(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	// break dibuka tapi tidak pernah ditutup
	*clock = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	_, err = svc.BreakStart(ctx, userID, model.BreakTypeOther, nil)
	require.NoError(t, err)

	*clock = time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	rec, err := svc.CheckOut(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	// sesi terbuka menyumbang 0 menit
	assert.Equal(t, 540, rec.TotalWorkMinutes)
	assert.Equal(t, 0, rec.TotalBreakMinutes)
}

func TestCheckOut_ClockSkewClampsToZero(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	// jam mundur 10 menit
	*clock = clock.Add(-10 * time.Minute)
	rec, err := svc.CheckOut(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TotalWorkMinutes)
}

/* =========================
   Break tracker
========================= */

func TestBreakStart_WithoutCheckIn(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())

	_, err := svc.BreakStart(context.Background(), uuid.New(), model.BreakTypeLunch, nil)
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestBreakStart_SecondOpenBreakRejected(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	_, err = svc.BreakStart(ctx, userID, model.BreakTypeLunch, nil)
	require.NoError(t, err)

	_, err = svc.BreakStart(ctx, userID, model.BreakTypeTea, nil)
	assert.ErrorIs(t, err, ErrBreakAlreadyOpen)
}

func TestBreakEnd_WithoutAttendance(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())

	_, err := svc.BreakEnd(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoAttendance)
}

func TestBreakEnd_NoOpenBreak(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	_, err = svc.BreakEnd(ctx, userID)
	assert.ErrorIs(t, err, ErrNoActiveBreak)
}

func TestBreakLifecycle(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	*clock = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	opened, err := svc.BreakStart(ctx, userID, model.BreakTypeLunch, nil)
	require.NoError(t, err)
	assert.Nil(t, opened.BreakEnd)

	*clock = time.Date(2026, 3, 9, 12, 45, 0, 0, time.UTC)
	closed, err := svc.BreakEnd(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, closed.BreakEnd)
	assert.Equal(t, 45, closed.BreakMinutes)
	assert.Equal(t, opened.BreakLogID, closed.BreakLogID)

	// setelah ditutup, sesi baru boleh dibuka lagi
	_, err = svc.BreakStart(ctx, userID, model.BreakTypeTea, nil)
	assert.NoError(t, err)
}

/* =========================
   Status & history
========================= */

func TestTodayStatus_NoRecord(t *testing.T) {
	svc, _, _ := newTestService(mainOffice())

	st, err := svc.TodayStatus(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, st.Attendance)
	assert.Nil(t, st.ActiveBreak)
	assert.Empty(t, st.Breaks)
}

func TestTodayStatus_WithOpenBreak(t *testing.T) {
	svc, _, clock := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userID, insideLat, insideLng, model.CheckTypeManual)
	require.NoError(t, err)

	*clock = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	_, err = svc.BreakStart(ctx, userID, model.BreakTypeLunch, nil)
	require.NoError(t, err)

	st, err := svc.TodayStatus(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, st.Attendance)
	require.NotNil(t, st.ActiveBreak)
	assert.Len(t, st.Breaks, 1)
	assert.Equal(t, model.BreakTypeLunch, st.ActiveBreak.BreakType)
}

func TestHistory_LimitClamped(t *testing.T) {
	svc, repo, _ := newTestService(mainOffice())
	userID := uuid.New()
	ctx := context.Background()

	// 3 hari absensi
	for day := 1; day <= 3; day++ {
		ts := time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
		rec := model.AttendanceModel{
			AttendanceID: uuid.New(),
			UserID:       userID,
			Date:         datatypes.Date(DateOf(ts)),
			CheckIn:      &ts,
		}
		repo.attendances[repo.key(userID, ts)] = rec
	}

	rows, err := svc.History(ctx, userID, nil, nil, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// terbaru dulu
	assert.True(t, time.Time(rows[0].Attendance.Date).After(time.Time(rows[1].Attendance.Date)))

	// limit <= 0 memakai default
	rows, err = svc.History(ctx, userID, nil, nil, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
