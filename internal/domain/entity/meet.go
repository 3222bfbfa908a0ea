package entity

import "time"

// Meet is a scheduled gathering with a location, a time and a creator.
// CreatorUsername is a soft reference to User.Name; ownership is enforced by
// authorization checks, not by the store.
type Meet struct {
	ID              int64     // Auto-assigned identifier from the store.
	Name            string    // Display name of the gathering.
	Description     string    // Free-form description.
	Latitude        float64   // Location latitude in degrees.
	Longitude       float64   // Location longitude in degrees.
	TimeScheduled   time.Time // When the gathering takes place.
	CreatorUsername string    // Name of the user who created the meet.
	TimeCreated     time.Time // When the meet row was inserted.
}
