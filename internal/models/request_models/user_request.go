package request_models

type CreateUserRequest struct {
	Email               string   `json:"email" binding:"required,email"`
	FullName            string   `json:"full_name"`
	Language            string   `json:"language"`
	TravelStyle         string   `json:"travel_style"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AccessibilityNeeds  []string `json:"accessibility_needs"`
}

// UpdateUserRequest only touches the fields that are present.
type UpdateUserRequest struct {
	Email               *string  `json:"email" binding:"omitempty,email"`
	FullName            *string  `json:"full_name"`
	Language            *string  `json:"language"`
	TravelStyle         *string  `json:"travel_style"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AccessibilityNeeds  []string `json:"accessibility_needs"`
}

type CreatePreferenceRequest struct {
	Category string `json:"category"`
	Weight   int    `json:"weight"`
}
