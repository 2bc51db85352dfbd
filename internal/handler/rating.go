package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kipkoech-dev/pitch-hire/internal/model"
	"github.com/kipkoech-dev/pitch-hire/internal/repository"
)

// RatingHandler bundles dependencies for rating endpoints.
type RatingHandler struct {
	Ratings *repository.RatingRepo
	Pitches *repository.PitchRepo
}

func NewRatingHandler(r *repository.RatingRepo, p *repository.PitchRepo) *RatingHandler {
	return &RatingHandler{Ratings: r, Pitches: p}
}

// Pointer fields so that "field absent" can be told apart from zero values.
type createRatingReq struct {
	PitchID *uint64 `json:"pitch_id"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type updateRatingReq struct {
	PitchID *uint64 `json:"pitch_id"`
	UserID  *uint64 `json:"user_id"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type ratingResp struct {
	ID      uint64  `json:"id"`
	PitchID uint64  `json:"pitch_id"`
	UserID  uint64  `json:"user_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// CreateRating handles POST /ratings.  All three fields must be present;
// the pitch must exist; admins cannot rate.  The checks run in that order,
// so a missing pitch wins over an admin caller.
func (h *RatingHandler) CreateRating(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	required := []struct {
		name    string
		present bool
	}{
		{"pitch_id", req.PitchID != nil},
		{"rating", req.Rating != nil},
		{"comment", req.Comment != nil},
	}
	for _, f := range required {
		if !f.present {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("missing '%s' field in request", f.name)})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pitch, err := h.Pitches.GetByID(ctx, *req.PitchID)
	if err != nil {
		if errors.Is(err, repository.ErrPitchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pitch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if isAdmin(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admins cannot create ratings"})
	}

	rating := &model.Rating{UserID: uid, PitchID: pitch.ID, Rating: *req.Rating, Comment: req.Comment}
	if err := h.Ratings.Create(ctx, rating); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create rating"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": "rating created successfully",
		"rating": ratingResp{
			ID:      rating.ID,
			PitchID: rating.PitchID,
			UserID:  rating.UserID,
			Rating:  rating.Rating,
			Comment: rating.Comment,
		},
	})
}

// UpdateRating handles PUT /ratings/:id.  Fields present in the payload
// overwrite the stored rating, including user_id and pitch_id.
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rating, err := h.Ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rating not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if req.PitchID != nil {
		rating.PitchID = *req.PitchID
	}
	if req.UserID != nil {
		rating.UserID = *req.UserID
	}
	if req.Rating != nil {
		rating.Rating = *req.Rating
	}
	if req.Comment != nil {
		rating.Comment = req.Comment
	}

	if err := h.Ratings.Update(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rating not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rating updated successfully"})
}

// DeleteRating handles DELETE /ratings/:id.
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Ratings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rating not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rating deleted successfully"})
}

// RatingsList handles GET /ratings_list: every rating joined with its
// pitch's name and image.  Ratings whose pitch is gone are omitted by the
// join; an empty result is reported as 404.
func (h *RatingHandler) RatingsList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Ratings.ListWithPitch(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if len(items) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "no ratings found"})
	}

	type joinedResp struct {
		ID             uint64  `json:"id"`
		PitchID        uint64  `json:"pitch_id"`
		UserID         uint64  `json:"user_id"`
		Rating         int     `json:"rating"`
		Comment        *string `json:"comment"`
		PitchName      string  `json:"pitch_name"`
		PitchImageData *string `json:"pitch_image_data"`
	}
	out := make([]joinedResp, 0, len(items))
	for _, rw := range items {
		out = append(out, joinedResp{
			ID:             rw.ID,
			PitchID:        rw.PitchID,
			UserID:         rw.UserID,
			Rating:         rw.Rating.Rating,
			Comment:        rw.Comment,
			PitchName:      rw.PitchName,
			PitchImageData: rw.PitchImageData,
		})
	}
	return c.JSON(http.StatusOK, out)
}
