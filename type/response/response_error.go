package response

type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Code    string  `json:"error,omitempty"`
	Detail  string  `json:"detail,omitempty"`
	Data    any     `json:"data,omitempty"`
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Success: false,
			Message: &message,
		}
	}
	unknown := "Unknown Error"
	return &ErrorResponse{
		Success: false,
		Message: &unknown,
	}
}

// WithCode attaches a machine readable error code and optional detail and data.
func (e *ErrorResponse) WithCode(code string, detail string, data any) *ErrorResponse {
	e.Code = code
	e.Detail = detail
	e.Data = data
	return e
}
