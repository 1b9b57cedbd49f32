// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"trackmate_backend/internals/features/attendance/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

// Koordinat pakai pointer supaya 0 (garis khatulistiwa / meridian) tetap lolos "required".
type CheckZoneRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Type      *string  `json:"type" validate:"omitempty,oneof=auto manual"`
}

// CheckType: default manual, sama seperti sistem lama.
func (r *CheckInRequest) CheckType() model.CheckType {
	if r.Type != nil && strings.TrimSpace(*r.Type) == string(model.CheckTypeAuto) {
		return model.CheckTypeAuto
	}
	return model.CheckTypeManual
}

type CheckOutRequest = CheckInRequest

type BreakStartRequest struct {
	BreakType *string `json:"break_type" validate:"omitempty,oneof=lunch tea other"`
	Reason    *string `json:"reason" validate:"omitempty,max=255"`
}

func (r *BreakStartRequest) Type() model.BreakType {
	if r.BreakType == nil {
		return model.BreakTypeOther
	}
	switch strings.TrimSpace(*r.BreakType) {
	case string(model.BreakTypeLunch):
		return model.BreakTypeLunch
	case string(model.BreakTypeTea):
		return model.BreakTypeTea
	default:
		return model.BreakTypeOther
	}
}

/* =========================================================
   QUERY DTO
   ========================================================= */

const dateLayout = "2006-01-02"

type HistoryQuery struct {
	FromDate *string `query:"from_date"`
	ToDate   *string `query:"to_date"`
	Limit    int     `query:"limit"`
}

// ParseRange: validasi format tanggal + urutan rentang.
// Mengembalikan pesan kosong kalau valid.
func (q *HistoryQuery) ParseRange() (from, to *time.Time, badField string) {
	if q.FromDate != nil && strings.TrimSpace(*q.FromDate) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(*q.FromDate))
		if err != nil {
			return nil, nil, "from_date"
		}
		from = &t
	}
	if q.ToDate != nil && strings.TrimSpace(*q.ToDate) != "" {
		t, err := time.Parse(dateLayout, strings.TrimSpace(*q.ToDate))
		if err != nil {
			return nil, nil, "to_date"
		}
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, "to_date"
	}
	return from, to, ""
}
