package models

// ApiResponse is the JSON envelope for message-style responses.
// List endpoints return the resource directly; failures always carry
// Message and optionally Error.
type ApiResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{
		Message: message,
	}
}

func BookingResponse(message string, booking *Booking) ApiResponse {
	return ApiResponse{
		Message: message,
		Booking: booking,
	}
}

func ErrorResponse(message string, err error) ApiResponse {
	res := ApiResponse{
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
