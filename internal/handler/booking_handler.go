/*
Package handler provides the HTTP handler function for the counselor booking flow.

Booking is validation-only: a request is checked against the counselor's fixture
availability and answered with a confirmation payload. Nothing is persisted and
no calendar is updated, matching the platform's prototype contract.
*/
package handler

import (
	"net/http"

	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/randx"
	"mindcampus/internal/pkg/req"
	"mindcampus/internal/pkg/resp"
)

type BookingInput struct {
	CounselorID int    `json:"counselorId"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
}

// HandleCreateBooking validates a booking request against the counselor's
// availability and returns a confirmation.
func HandleCreateBooking(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input BookingInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Date == "" || input.Slot == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		counselor, ok := deps.Catalog.CounselorByID(input.CounselorID)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrCounselorNotFound))
			return
		}

		if !counselor.HasSlot(input.Date, input.Slot) {
			resp.RespondError(w, r, errs.NewError(errs.ErrSlotUnavailable))
			return
		}

		logx.Info("Booking confirmed",
			"counselor_id", counselor.ID,
			"date", input.Date,
			"slot", input.Slot,
		)

		resp.RespondSuccess(w, r, map[string]any{
			"booking": map[string]any{
				"id":        randx.MessageID(),
				"counselor": counselor.Name,
				"date":      input.Date,
				"slot":      input.Slot,
				"status":    "confirmed",
			},
		})
	}
}
