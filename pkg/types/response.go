package types

// Envelope is the uniform response wrapper used by every endpoint.
// Data is an empty object rather than null when a route has nothing to
// return, so clients can index into it unconditionally.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func SuccessEnvelope(message string, data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{Success: true, Message: message, Data: data}
}

func ErrorEnvelope(message string, data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{Success: false, Message: message, Data: data}
}
