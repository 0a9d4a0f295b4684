package request_models

// TripRequest is used for both create and full update. Dates are
// YYYY-MM-DD, the budget a decimal string such as "1000.00".
type TripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TotalBudget *string `json:"total_budget"`
}

type CreateCollaboratorRequest struct {
	CollaboratorEmail string `json:"collaborator_email" binding:"required,email"`
	Role              string `json:"role"`
}
