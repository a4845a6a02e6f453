package dto

// ===================== Request DTOs =====================

type SlotRequest struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"` // HH:MM
	End   string `json:"end" validate:"required"`   // HH:MM
}

type ProfileRequest struct {
	Interests    []string      `json:"interests" validate:"required"`
	Availability []SlotRequest `json:"availability"`
}

// ===================== Response DTOs =====================

type SlotResponse struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ProfileResponse struct {
	Exists       bool           `json:"exists"`
	Interests    []string       `json:"interests,omitempty"`
	Availability []SlotResponse `json:"availability,omitempty"`
}
