// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a pitch booking is successfully
// created. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
// Pitch fields may be empty when the enriching lookup failed; the booking
// itself is already committed at that point.
type BookingCreatedEvent struct {
	BookingID     uint64  `json:"booking_id"`
	UserID        uint64  `json:"user_id"`
	PitchID       uint64  `json:"pitch_id"`
	PitchName     string  `json:"pitch_name"`
	PitchLocation string  `json:"pitch_location"`
	PricePerHour  float64 `json:"price_per_hour"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"created_at"`
}
