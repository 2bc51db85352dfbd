package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kipkoech-dev/pitch-hire/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be found in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo encapsulates all database queries related to bookings.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking and populates its ID on success.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = "INSERT INTO bookings (user_id, pitch_id, date) VALUES (?,?,?)"
	res, err := r.db.ExecContext(ctx, q, b.UserID, b.PitchID, b.Date)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking by id, returning ErrBookingNotFound when missing.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = "SELECT id, user_id, pitch_id, date FROM bookings WHERE id = ?"
	var b model.Booking
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.UserID, &b.PitchID, &b.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListAll returns every booking in the system ordered by id.  The listing
// endpoint is not filtered per user.
func (r *BookingRepo) ListAll(ctx context.Context) ([]*model.Booking, error) {
	const q = "SELECT id, user_id, pitch_id, date FROM bookings ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		b := new(model.Booking)
		if err := rows.Scan(&b.ID, &b.UserID, &b.PitchID, &b.Date); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists user_id, pitch_id and date for a booking.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	const q = `UPDATE bookings
	           SET user_id = ?, pitch_id = ?, date = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.UserID, b.PitchID, b.Date, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking by id, returning ErrBookingNotFound when no row
// matched.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
