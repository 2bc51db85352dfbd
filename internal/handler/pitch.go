package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kipkoech-dev/pitch-hire/internal/model"
	"github.com/kipkoech-dev/pitch-hire/internal/repository"
)

// PitchHandler bundles dependencies for pitch management endpoints.  All
// mutating routes are registered behind the ADMIN role middleware; the
// listing is available to every authenticated user.
type PitchHandler struct {
	Pitches *repository.PitchRepo
}

func NewPitchHandler(p *repository.PitchRepo) *PitchHandler {
	return &PitchHandler{Pitches: p}
}

type createPitchReq struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"price_per_hour"`
}

type updatePitchReq struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	PricePerHour *float64 `json:"price_per_hour"`
	Image        *string  `json:"image"`
}

type pitchResp struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"price_per_hour"`
	Image        *string `json:"image"`
}

func toPitchResp(p *model.Pitch) pitchResp {
	return pitchResp{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Location:     p.Location,
		PricePerHour: p.PricePerHour,
		Image:        p.ImageData,
	}
}

// GetPitches handles GET /get_pitches and returns every pitch.
func (h *PitchHandler) GetPitches(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Pitches.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]pitchResp, 0, len(items))
	for _, p := range items {
		out = append(out, toPitchResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"pitches": out})
}

// CreatePitch handles POST /pitches.  The route is admin-only; every field
// of the payload is required.
func (h *PitchHandler) CreatePitch(c echo.Context) error {
	var req createPitchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Description == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/description/location required"})
	}

	pitch := &model.Pitch{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		PricePerHour: req.PricePerHour,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Pitches.Create(ctx, pitch); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create pitch"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": "pitch created successfully"})
}

// UpdatePitch handles PUT /pitches/:id and applies the fields present in
// the payload to the stored pitch.
func (h *PitchHandler) UpdatePitch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updatePitchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pitch, err := h.Pitches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPitchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "pitch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if req.Name != nil {
		pitch.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		pitch.Description = *req.Description
	}
	if req.Location != nil {
		pitch.Location = *req.Location
	}
	if req.PricePerHour != nil {
		pitch.PricePerHour = *req.PricePerHour
	}
	if req.Image != nil {
		pitch.ImageData = req.Image
	}

	if err := h.Pitches.Update(ctx, pitch); err != nil {
		if errors.Is(err, repository.ErrPitchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "pitch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pitch updated successfully"})
}

// DeletePitch handles DELETE /pitches/:id.  The pitch's bookings and
// ratings are removed in the same transaction.
func (h *PitchHandler) DeletePitch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Pitches.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPitchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "pitch not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pitch deleted successfully"})
}
