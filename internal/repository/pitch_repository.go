// This file defines repository methods for CRUD and lookup operations on
// pitches. A Pitch is an admin-managed venue that members can book and
// rate. Deleting a pitch also removes its dependent bookings and ratings.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/kipkoech-dev/pitch-hire/internal/model"
)

// ErrPitchNotFound is returned when a pitch cannot be found in the DB.
var ErrPitchNotFound = errors.New("pitch not found")

// PitchRepo encapsulates all database queries related to pitches.  It
// depends on a sql.DB connection which should be configured elsewhere.
type PitchRepo struct {
	db *sql.DB
}

// NewPitchRepo constructs a PitchRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewPitchRepo(db *sql.DB) *PitchRepo {
	return &PitchRepo{db: db}
}

// Create inserts a new pitch into the database.  On success the pitch's
// ID field will be populated with the auto-generated value.
func (r *PitchRepo) Create(ctx context.Context, p *model.Pitch) error {
	const q = "INSERT INTO pitches (name, description, location, price_per_hour, image_data) VALUES (?,?,?,?,?)"
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Description, p.Location, p.PricePerHour, p.ImageData)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID fetches a pitch by its ID.  It returns ErrPitchNotFound if no
// row is found.
func (r *PitchRepo) GetByID(ctx context.Context, id uint64) (*model.Pitch, error) {
	const q = "SELECT id, name, description, location, price_per_hour, image_data FROM pitches WHERE id = ?"
	var p model.Pitch
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Location, &p.PricePerHour, &p.ImageData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPitchNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns all pitches ordered by id.
func (r *PitchRepo) ListAll(ctx context.Context) ([]*model.Pitch, error) {
	const q = `SELECT id, name, description, location, price_per_hour, image_data
	           FROM pitches ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Pitch
	for rows.Next() {
		p := new(model.Pitch)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Location, &p.PricePerHour, &p.ImageData); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the full pitch record.  Handlers merge partial payloads
// into a loaded pitch before calling this.  ErrPitchNotFound is returned
// when no row matched the id.
func (r *PitchRepo) Update(ctx context.Context, p *model.Pitch) error {
	const q = `UPDATE pitches
	           SET name = ?, description = ?, location = ?, price_per_hour = ?, image_data = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Description, p.Location, p.PricePerHour, p.ImageData, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPitchNotFound
	}
	return nil
}

// Delete removes a pitch and all dependent records (bookings and ratings)
// in a single transaction.  ErrPitchNotFound is returned when the pitch
// does not exist; in that case nothing is deleted.
func (r *PitchRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ratings WHERE pitch_id=?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM bookings WHERE pitch_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM pitches WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPitchNotFound
	}
	return tx.Commit()
}
