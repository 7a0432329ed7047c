package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	mine       *ucBooking.ListMyBookings
	forSalon   *ucBooking.ListSalonBookings
	get        *ucBooking.GetBooking
	transition *ucBooking.TransitionBooking
	cancel     *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	mine *ucBooking.ListMyBookings,
	forSalon *ucBooking.ListSalonBookings,
	get *ucBooking.GetBooking,
	transition *ucBooking.TransitionBooking,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		mine:       mine,
		forSalon:   forSalon,
		get:        get,
		transition: transition,
		cancel:     cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Required fields are checked by the use case so the messages stay uniform.
type CreateBookingRequest struct {
	SalonID     string   `json:"salonId"`
	Services    []string `json:"services"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Notes       string   `json:"notes"`
	TotalAmount float64  `json:"totalAmount"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}

type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.CurrentIdentity(c), ucBooking.CreateBookingInput{
		SalonID:     req.SalonID,
		Services:    req.Services,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Booking created successfully", b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Mine(c *gin.Context) {
	bookings, err := h.mine.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Items(c, "", bookings)
}

func (h *BookingHandler) ForSalon(c *gin.Context) {
	bookings, err := h.forSalon.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("salonId"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Items(c, "", bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.transition.Execute(c.Request.Context(), middleware.CurrentIdentity(c), ucBooking.TransitionInput{
		BookingID: c.Param("id"),
		Status:    req.Status,
		Reason:    req.CancellationReason,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, fmt.Sprintf("Booking %s successfully", b.Status), b)
}

// Cancel takes an optional body.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	b, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		req.CancellationReason,
	)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Booking cancelled successfully", b)
}
