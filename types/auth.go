package types

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token on successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
