package model

import "time"

// DateLayout is the wire format for booking dates in requests and
// responses ("YYYY-MM-DD HH:MM:SS").
const DateLayout = "2006-01-02 15:04:05"

// Booking records a member's reservation of a pitch at a specific time,
// persisted in the `bookings` table. There is no overlap checking: several
// bookings may exist for the same pitch and time.
//
// Fields:
//  ID        - primary key identifier.
//  UserID    - member who made the booking.
//  PitchID   - pitch being booked.
//  Date      - reserved date and time.
//  CreatedAt - creation timestamp.
//  UpdatedAt - last update timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	PitchID   uint64    // bookings.pitch_id
	Date      time.Time // bookings.date
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}
