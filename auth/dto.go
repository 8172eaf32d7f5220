package auth

// SignUpRequest is the payload for POST /auth/sign-in.
type SignUpRequest struct {
	Username string `json:"username" example:"johndoe"`
	Password string `json:"password" example:"strongpassword123"`
	Name     string `json:"name" example:"John Doe"`
}

// LogInRequest is the payload for POST /auth/log-in.
type LogInRequest struct {
	Username string `json:"username" example:"johndoe"`
	Password string `json:"password" example:"strongpassword123"`
}

// AuthPayload is returned on successful sign-up or log-in.
type AuthPayload struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  *User  `json:"user"`
}

// AuthResponse wraps the payload in the data envelope the API has always used.
type AuthResponse struct {
	Data *AuthPayload `json:"data"`
}
