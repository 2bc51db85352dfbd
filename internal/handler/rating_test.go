package handler

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoech-dev/pitch-hire/internal/repository"
)

var ratingCols = []string{"id", "user_id", "pitch_id", "rating", "comment"}

func newRatingHandler(t *testing.T) (*RatingHandler, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewRatingHandler(repository.NewRatingRepo(db), repository.NewPitchRepo(db)), mock
}

func TestCreateRatingMissingField(t *testing.T) {
	h, _ := newRatingHandler(t)

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/ratings", `{"pitch_id":1,"rating":4}`)
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.CreateRating(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing 'comment' field in request")
}

func TestCreateRatingPitchNotFound(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPitchByID)).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(pitchCols))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/ratings", `{"pitch_id":99,"rating":4,"comment":"nice"}`)
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.CreateRating(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "pitch not found")
	// No INSERT was expected: nothing is written for a missing pitch.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRatingRejectsAdmin(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPitchByID)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(pitchCols).AddRow(1, "Arena A", "5-a-side", "Nairobi West", 2500.0, nil))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/ratings", `{"pitch_id":1,"rating":4,"comment":"nice"}`)
	asUser(c, 1, "ADMIN")
	require.NoError(t, h.CreateRating(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "admins cannot create ratings")
}

func TestCreateRatingSuccess(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPitchByID)).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(pitchCols).AddRow(1, "Arena A", "5-a-side", "Nairobi West", 2500.0, nil))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings (user_id, pitch_id, rating, comment) VALUES (?,?,?,?)")).
		WithArgs(uint64(2), uint64(1), 4, "nice surface").
		WillReturnResult(sqlmock.NewResult(7, 1))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPost, "/ratings", `{"pitch_id":1,"rating":4,"comment":"nice surface"}`)
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.CreateRating(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
	assert.Contains(t, rec.Body.String(), `"rating":4`)
	assert.Contains(t, rec.Body.String(), "nice surface")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRatingNotFound(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, pitch_id, rating, comment FROM ratings WHERE id = ?")).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(ratingCols))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodPut, "/ratings/99", `{"rating":2}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.UpdateRating(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating not found")
}

func TestDeleteRatingNotFound(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ratings WHERE id=?")).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodDelete, "/ratings/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.DeleteRating(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRatingsListEmpty(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery("FROM ratings r").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pitch_id", "rating", "comment", "name", "image_data"}))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodGet, "/ratings_list", "")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.RatingsList(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no ratings found")
}

func TestRatingsListJoined(t *testing.T) {
	h, mock := newRatingHandler(t)

	mock.ExpectQuery("FROM ratings r").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pitch_id", "rating", "comment", "name", "image_data"}).
			AddRow(1, 2, 1, 5, "great pitch", "Arena A", nil).
			AddRow(2, 3, 1, 3, nil, "Arena A", "img-b64"))

	e := echo.New()
	c, rec := jsonContext(e, http.MethodGet, "/ratings_list", "")
	asUser(c, 2, "MEMBER")
	require.NoError(t, h.RatingsList(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pitch_name":"Arena A"`)
	assert.Contains(t, rec.Body.String(), "great pitch")
	assert.Contains(t, rec.Body.String(), `"pitch_image_data":"img-b64"`)
}
