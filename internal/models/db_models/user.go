package db_models

// User owns preferences, trips, feedback, travel history and AI interaction
// logs. Deleting a user cascades to all five collections.
type User struct {
	BaseModel
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	FullName            string     `json:"full_name"`
	Language            string     `gorm:"default:en" json:"language"`
	TravelStyle         string     `json:"travel_style"`
	DietaryRestrictions StringList `json:"dietary_restrictions"`
	AccessibilityNeeds  StringList `json:"accessibility_needs"`

	Preferences    []UserPreference `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"preferences,omitempty"`
	Trips          []Trip           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"trips,omitempty"`
	Feedback       []Feedback       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
	TravelHistory  []TravelHistory  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"travel_history,omitempty"`
	AIInteractions []AIInteraction  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"ai_interactions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
