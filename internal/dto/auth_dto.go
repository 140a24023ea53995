package dto

type RegisterRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	EntertainmentType string `json:"entertainment_type"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user"`
}

type CheckUsernameRequest struct {
	Username string `json:"username"`
}

type CheckUsernameResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	User              string `json:"user"`
	EntertainmentType string `json:"entertainment_type"`
	Token             string `json:"token,omitempty"`
}

type EntertainmentTypesResponse struct {
	Types []string `json:"types"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	DB      string `json:"db"`
}
