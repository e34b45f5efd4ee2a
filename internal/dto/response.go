package dto

// APIResponse is the envelope shared by every endpoint.
// swagger:model APIResponse
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func Err(msg string) APIResponse {
	return APIResponse{Success: false, Error: msg}
}
