package request_models

type CreateFeedbackRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	TripID        string   `json:"trip_id" binding:"required"`
	Rating        int      `json:"rating"`
	Comments      string   `json:"comments"`
	FlaggedIssues []string `json:"flagged_issues"`
}
