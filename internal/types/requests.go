package types

// CreateMealRequest represents the multipart form fields for sharing a meal
type CreateMealRequest struct {
	Title        string `form:"title" binding:"required"`
	Summary      string `form:"summary" binding:"required"`
	Instructions string `form:"instructions" binding:"required"`
	Creator      string `form:"creator" binding:"required"`
	CreatorEmail string `form:"creator_email" binding:"required,email"`
}

// MealDraft is an unsaved meal submission awaiting slug derivation,
// sanitization, and persistence.
type MealDraft struct {
	Title            string
	Summary          string
	Instructions     string
	Creator          string
	CreatorEmail     string
	ImageData        []byte
	ImageFileName    string
	ImageContentType string
}

// MealResponse is a Meal decorated with the publicly reachable image URL.
// The stored image value is only the object key; composing the full URL
// from the configured base path is a presentation concern.
type MealResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Summary      string `json:"summary"`
	Instructions string `json:"instructions"`
	Creator      string `json:"creator"`
	CreatorEmail string `json:"creator_email"`
	Image        string `json:"image"`
	ImageURL     string `json:"image_url"`
}
