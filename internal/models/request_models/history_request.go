package request_models

type CreateTravelHistoryRequest struct {
	Destination string   `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Activities  []string `json:"activities"`
	Liked       *bool    `json:"liked"`
	Notes       string   `json:"notes"`
}

type CreateAIInteractionRequest struct {
	Input     string `json:"input"`
	Response  string `json:"response"`
	Purpose   string `json:"purpose"`
	ModelUsed string `json:"model_used"`
}
