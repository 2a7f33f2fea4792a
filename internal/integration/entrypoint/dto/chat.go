package dto

// AskRequest represents the request body for the financial advisor chat.
type AskRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

// AskResponse represents the advisor's answer.
type AskResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
	Source      string   `json:"source"`
}
