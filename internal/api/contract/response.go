package contract

import "github.com/google/uuid"

type Response struct {
	Successful bool   `json:"successful"`
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	TrackID    string `json:"x_track_id"`
	Result     any    `json:"result"`
}

// OK wraps a successful result with a fresh track id for log correlation.
func OK(message string, result any) Response {
	return Response{
		Successful: true,
		Code:       "success",
		Message:    message,
		TrackID:    uuid.NewString(),
		Result:     result,
	}
}
