package model

import "time"

// Rating is a member's review of a pitch, persisted in the `ratings`
// table. The rating value is not range-checked and a member may rate the
// same pitch more than once.
//
// Fields:
//  ID        - primary key identifier.
//  UserID    - member who wrote the review.
//  PitchID   - pitch being reviewed.
//  Rating    - integer score.
//  Comment   - optional free-text comment (nullable).
//  CreatedAt - creation timestamp.
//  UpdatedAt - last update timestamp.
type Rating struct {
	ID        uint64    // ratings.id
	UserID    uint64    // ratings.user_id
	PitchID   uint64    // ratings.pitch_id
	Rating    int       // ratings.rating
	Comment   *string   // ratings.comment (nullable)
	CreatedAt time.Time // ratings.created_at
	UpdatedAt time.Time // ratings.updated_at
}

// RatingWithPitch is the joined view returned by the ratings listing: a
// rating enriched with the name and image of the pitch it refers to.
type RatingWithPitch struct {
	Rating
	PitchName      string  // pitches.name
	PitchImageData *string // pitches.image_data (nullable)
}
