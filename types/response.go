package types

// ErrorResponse is the bare error envelope used by lookup and admin
// endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the create-endpoint rejection envelope.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
