package handlers

import (
	"net/http"

	bookingRepo "cardoctor/database/repository/booking"
	"cardoctor/middleware"
	"cardoctor/models"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints. Every route runs behind
// SessionAuthMiddleware, and writes are scoped to the session's email.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ListBookingsHandler handles GET /bookings?email=. A requested email must be
// the caller's own; without one every booking is returned.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.WriteError(c, utils.ErrUnauthorized)
		return
	}

	email, filtered := c.GetQuery("email")
	if filtered && email != identity.Email() {
		utils.WriteError(c, utils.ErrForbidden)
		return
	}

	bookings, err := h.Repo.Find(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("ListBookingsHandler: failed to fetch bookings", zap.String("email", email), zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.WriteError(c, utils.ErrUnauthorized)
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if input.Email != identity.Email() {
		utils.WriteError(c, utils.ErrForbidden)
		return
	}

	ack, err := h.Repo.Create(c.Request.Context(), input.ToBooking())
	if err != nil {
		getLogger(c).Error("CreateBookingHandler: failed to insert booking", zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id. Only the status
// field changes.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.WriteError(c, utils.ErrUnauthorized)
		return
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ack, err := h.Repo.UpdateStatus(c.Request.Context(), id, identity.Email(), input.Status)
	if err != nil {
		getLogger(c).Error("UpdateBookingStatusHandler: failed to update booking", zap.String("bookingID", id.Hex()), zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// DeleteBookingHandler handles DELETE /bookings/:id. Deleting an unknown
// booking reports zero deletions.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.WriteError(c, utils.ErrUnauthorized)
		return
	}

	id, err := objectIDParam(c, "id")
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	ack, err := h.Repo.Delete(c.Request.Context(), id, identity.Email())
	if err != nil {
		getLogger(c).Error("DeleteBookingHandler: failed to delete booking", zap.String("bookingID", id.Hex()), zap.Error(err))
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
