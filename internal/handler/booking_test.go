package handler

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoech-dev/pitch-hire/internal/queue"
	"github.com/kipkoech-dev/pitch-hire/internal/repository"
)

const selectBookingByID = "SELECT id, user_id, pitch_id, date FROM bookings WHERE id = ?"

var bookingCols = []string{"id", "user_id", "pitch_id", "date"}

func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock, chan queue.BookingCreatedEvent) {
	db, mock := newMockDB(t)
	h := NewBookingHandler(repository.NewBookingRepo(db), repository.NewPitchRepo(db))
	published := make(chan queue.BookingCreatedEvent, 1)
	h.Publish = func(_ context.Context, ev queue.BookingCreatedEvent) error {
		published <- ev
		return nil
	}
	return h, mock, published
}

func TestCreateBookingRejectsAdmin(t *testing.T) {
	h, _, _ := newBookingHandler(t)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/bookings", `{"pitch_id":1,"date":"2026-09-05 18:00:00"}`)
	asUser(c, 1, "ADMIN")
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "admins cannot create bookings")
}

func TestCreateBookingRejectsMalformedDate(t *testing.T) {
	h, _, _ := newBookingHandler(t)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/bookings", `{"pitch_id":1,"date":"next tuesday"}`)
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid date")
}

func TestCreateBookingPublishesEvent(t *testing.T) {
	h, mock, published := newBookingHandler(t)

	date := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings (user_id, pitch_id, date) VALUES (?,?,?)")).
		WithArgs(uint64(2), uint64(1), date).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectPitchByID)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(pitchCols).AddRow(1, "Arena A", "5-a-side", "Nairobi West", 2500.0, nil))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/bookings", `{"pitch_id":1,"date":"2026-09-05 18:00:00"}`)
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking created successfully")

	select {
	case ev := <-published:
		assert.Equal(t, uint64(10), ev.BookingID)
		assert.Equal(t, uint64(2), ev.UserID)
		assert.Equal(t, "Arena A", ev.PitchName)
		assert.Equal(t, "2026-09-05 18:00:00", ev.Date)
	case <-time.After(2 * time.Second):
		t.Fatal("booking.created event was not published")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookings(t *testing.T) {
	h, mock, _ := newBookingHandler(t)

	date := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, user_id, pitch_id, date FROM bookings").
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(1, 2, 1, date))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodGet, "/get_bookings", "")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.GetBookings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookings"`)
	assert.Contains(t, rec.Body.String(), "2026-09-05 18:00:00")
}

func TestUpdateBookingNotFound(t *testing.T) {
	h, mock, _ := newBookingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectBookingByID)).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPut, "/bookings/99", `{"pitch_id":3}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking not found")
}

func TestUpdateBookingReparsesDate(t *testing.T) {
	h, mock, _ := newBookingHandler(t)

	oldDate := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	newDate := time.Date(2026, 9, 6, 20, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectBookingByID)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(1, 2, 1, oldDate))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(uint64(2), uint64(1), newDate, uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPut, "/bookings/1", `{"date":"2026-09-06 20:00:00"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.UpdateBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingNotFound(t *testing.T) {
	h, mock, _ := newBookingHandler(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id=?")).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodDelete, "/bookings/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.DeleteBooking(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
