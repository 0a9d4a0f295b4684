package db_models

// SchemaVersion is reported by GET /api/version.
const SchemaVersion = "1.0.0"

// AllModels lists every table of the schema in dependency order.
func AllModels() []any {
	return []any{
		&User{},
		&UserPreference{},
		&Trip{},
		&ItineraryItem{},
		&Booking{},
		&TripCollaborator{},
		&Feedback{},
		&TravelHistory{},
		&AIInteraction{},
	}
}
