package dto

// UpdateLeadFieldRequest sets one lead form field.
type UpdateLeadFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// LandingStat is one figure in the hero strip.
type LandingStat struct {
	Label string
	Value string
}
