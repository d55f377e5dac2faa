package models

// ColorResult is the outcome of an average-color extraction. Success is
// false when the fallback palette was used.
type ColorResult struct {
	Color   string `json:"color"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
