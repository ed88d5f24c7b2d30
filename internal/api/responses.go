package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// QuotaErrorResponse is returned when a facility hits a subscription plan limit.
type QuotaErrorResponse struct {
	Error string `json:"error" example:"member limit reached for current subscription plan"`
	Limit int    `json:"limit" example:"50"`
}
