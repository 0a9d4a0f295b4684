package request_models

type PointRequest struct {
	Lng float64 `json:"lng" binding:"gte=-180,lte=180"`
	Lat float64 `json:"lat" binding:"gte=-90,lte=90"`
}

// ItineraryItemRequest is used for both create and full update. Type,
// booking status and cost are checked by the database, not here.
type ItineraryItemRequest struct {
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Location      *PointRequest `json:"location"`
	Address       string        `json:"address"`
	StartTime     *string       `json:"start_time"`
	EndTime       *string       `json:"end_time"`
	Cost          *string       `json:"cost"`
	ProviderName  string        `json:"provider_name"`
	ExternalLink  string        `json:"external_link"`
	BookingStatus string        `json:"booking_status"`
}

type BookingRequest struct {
	ConfirmationNumber string `json:"confirmation_number"`
	Provider           string `json:"provider"`
	Status             string `json:"status"`
}
