package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IGN03/TMC/api/responses"
	"github.com/IGN03/TMC/api/validators"
	checkoutsvc "github.com/IGN03/TMC/internal/checkout"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
	"github.com/IGN03/TMC/pkg/logger"
)

type checkoutRequest struct {
	PickupLocation *uuid.UUID       `json:"pickupLocation"`
	Tip            *decimal.Decimal `json:"tip"`
}

// Checkout turns the caller's stored cart into an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		accountID, err := accountIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), accountID, checkoutsvc.Input{
			PickupLocation: payload.PickupLocation,
			Tip:            payload.Tip,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
