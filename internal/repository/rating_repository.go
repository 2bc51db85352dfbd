package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kipkoech-dev/pitch-hire/internal/model"
)

// ErrRatingNotFound is returned when a rating cannot be found in the DB.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepo encapsulates all database queries related to ratings.
type RatingRepo struct {
	db *sql.DB
}

func NewRatingRepo(db *sql.DB) *RatingRepo { return &RatingRepo{db: db} }

// Create inserts a rating and populates its ID on success.
func (r *RatingRepo) Create(ctx context.Context, rt *model.Rating) error {
	const q = "INSERT INTO ratings (user_id, pitch_id, rating, comment) VALUES (?,?,?,?)"
	res, err := r.db.ExecContext(ctx, q, rt.UserID, rt.PitchID, rt.Rating, rt.Comment)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rt.ID = uint64(id)
	return nil
}

// GetByID fetches a rating by id, returning ErrRatingNotFound when missing.
func (r *RatingRepo) GetByID(ctx context.Context, id uint64) (*model.Rating, error) {
	const q = "SELECT id, user_id, pitch_id, rating, comment FROM ratings WHERE id = ?"
	var rt model.Rating
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rt.ID, &rt.UserID, &rt.PitchID, &rt.Rating, &rt.Comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rt, nil
}

// Update persists user_id, pitch_id, rating and comment for a rating.
func (r *RatingRepo) Update(ctx context.Context, rt *model.Rating) error {
	const q = `UPDATE ratings
	           SET user_id = ?, pitch_id = ?, rating = ?, comment = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, rt.UserID, rt.PitchID, rt.Rating, rt.Comment, rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// Delete removes a rating by id, returning ErrRatingNotFound when no row
// matched.
func (r *RatingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM ratings WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// ListWithPitch returns every rating joined with the name and image of the
// pitch it refers to, ordered by rating id.  The inner join drops ratings
// whose pitch no longer exists, matching the listing's skip-on-missing
// behaviour.
func (r *RatingRepo) ListWithPitch(ctx context.Context) ([]*model.RatingWithPitch, error) {
	const q = `SELECT r.id, r.user_id, r.pitch_id, r.rating, r.comment, p.name, p.image_data
	           FROM ratings r
	           JOIN pitches p ON p.id = r.pitch_id
	           ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.RatingWithPitch
	for rows.Next() {
		rw := new(model.RatingWithPitch)
		if err := rows.Scan(&rw.ID, &rw.UserID, &rw.PitchID, &rw.Rating.Rating, &rw.Comment, &rw.PitchName, &rw.PitchImageData); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
