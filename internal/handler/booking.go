package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kipkoech-dev/pitch-hire/internal/model"
	"github.com/kipkoech-dev/pitch-hire/internal/queue"
	"github.com/kipkoech-dev/pitch-hire/internal/repository"
	queue_publisher "github.com/kipkoech-dev/pitch-hire/internal/service"
)

// BookingHandler bundles dependencies for booking endpoints.  Publish is
// the event sink for created bookings; it defaults to the RabbitMQ
// publisher and is replaceable in tests.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Pitches  *repository.PitchRepo
	Publish  func(context.Context, queue.BookingCreatedEvent) error
}

func NewBookingHandler(b *repository.BookingRepo, p *repository.PitchRepo) *BookingHandler {
	return &BookingHandler{Bookings: b, Pitches: p, Publish: queue_publisher.PublishBookingCreated}
}

type createBookingReq struct {
	PitchID uint64 `json:"pitch_id"`
	Date    string `json:"date"`
}

type updateBookingReq struct {
	PitchID *uint64 `json:"pitch_id"`
	UserID  *uint64 `json:"user_id"`
	Date    *string `json:"date"`
}

type bookingResp struct {
	ID      uint64 `json:"id"`
	PitchID uint64 `json:"pitch_id"`
	Date    string `json:"date"`
}

// CreateBooking handles POST /bookings.  Admins cannot book; the booking
// is always tied to the caller's identity.  Dates use the fixed
// "YYYY-MM-DD HH:MM:SS" layout.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if isAdmin(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admins cannot create bookings"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.PitchID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pitch_id required"})
	}
	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD HH:MM:SS"})
	}

	booking := &model.Booking{UserID: uid, PitchID: req.PitchID, Date: date}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Create(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	// Fire-and-forget notification; a broker outage must not fail the
	// request that already committed.
	event := queue.BookingCreatedEvent{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		PitchID:   booking.PitchID,
		Date:      booking.Date.Format(model.DateLayout),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if pitch, err := h.Pitches.GetByID(ctx, booking.PitchID); err == nil {
		event.PitchName = pitch.Name
		event.PitchLocation = pitch.Location
		event.PricePerHour = pitch.PricePerHour
	}
	publish := h.Publish
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = publish(ctx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{"success": "booking created successfully"})
}

// GetBookings handles GET /get_bookings and returns every booking in the
// system to any authenticated caller.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]bookingResp, 0, len(items))
	for _, b := range items {
		out = append(out, bookingResp{ID: b.ID, PitchID: b.PitchID, Date: b.Date.Format(model.DateLayout)})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}

// UpdateBooking handles PUT /bookings/:id.  Fields present in the payload
// overwrite the stored booking, including user_id and pitch_id.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if req.PitchID != nil {
		booking.PitchID = *req.PitchID
	}
	if req.UserID != nil {
		booking.UserID = *req.UserID
	}
	if req.Date != nil {
		date, err := time.Parse(model.DateLayout, *req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD HH:MM:SS"})
		}
		booking.Date = date
	}

	if err := h.Bookings.Update(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking updated successfully"})
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking deleted successfully"})
}
