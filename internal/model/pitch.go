package model

import "time"

// Pitch represents a football pitch available for hire, persisted in the
// `pitches` table. Pitches are managed exclusively by admin users and may
// carry optional image data uploaded out of band.
//
// Fields:
//  ID           - primary key identifier.
//  Name         - human-friendly pitch name.
//  Description  - free-text description of the facilities.
//  Location     - where the pitch is located.
//  PricePerHour - hire price per hour.
//  ImageData    - optional image payload (nullable).
//  CreatedAt    - creation timestamp.
//  UpdatedAt    - last update timestamp.
type Pitch struct {
	ID           uint64    // pitches.id
	Name         string    // pitches.name
	Description  string    // pitches.description
	Location     string    // pitches.location
	PricePerHour float64   // pitches.price_per_hour
	ImageData    *string   // pitches.image_data (nullable)
	CreatedAt    time.Time // pitches.created_at
	UpdatedAt    time.Time // pitches.updated_at
}
