package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/errs"
)

func TestCreateBookingConfirmsAvailableSlot(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	counselor := deps.Catalog.Counselors[0]
	var date, slot string
	for d, slots := range counselor.Availability {
		date, slot = d, slots[0]
		break
	}

	rec := doJSON(t, router, http.MethodPost, "/api/booking", map[string]any{
		"counselorId": counselor.ID,
		"date":        date,
		"slot":        slot,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Booking struct {
			ID        string `json:"id"`
			Counselor string `json:"counselor"`
			Status    string `json:"status"`
		} `json:"booking"`
	}
	decodeData(t, rec, &data)
	assert.NotEmpty(t, data.Booking.ID)
	assert.Equal(t, counselor.Name, data.Booking.Counselor)
	assert.Equal(t, "confirmed", data.Booking.Status)
}

func TestCreateBookingRejectsUnknownCounselor(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodPost, "/api/booking", map[string]any{
		"counselorId": 999,
		"date":        "2024-01-15",
		"slot":        "10:00",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errs.ErrCounselorNotFound, decodeEnvelope(t, rec).Code)
}

func TestCreateBookingRejectsUnavailableSlot(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	counselor := deps.Catalog.Counselors[0]

	rec := doJSON(t, router, http.MethodPost, "/api/booking", map[string]any{
		"counselorId": counselor.ID,
		"date":        "2024-01-15",
		"slot":        "03:00",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrSlotUnavailable, decodeEnvelope(t, rec).Code)
}

func TestCreateBookingRequiresDateAndSlot(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodPost, "/api/booking", map[string]any{
		"counselorId": 1,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrInvalidParams, decodeEnvelope(t, rec).Code)
}
