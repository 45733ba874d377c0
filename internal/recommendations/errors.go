package recommendations

import "errors"

var (
	ErrMissingAPIKey = errors.New("api key missing")
	ErrMissingFields = errors.New("missing required fields")
	ErrNonJSON       = errors.New("model returned non-JSON text")
)

const (
	ErrorCodeConfig     = "CONFIG_ERROR"
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeUpstream   = "UPSTREAM_ERROR"
	ErrorCodeTimeout    = "UPSTREAM_TIMEOUT"
	ErrorCodeShape      = "UPSTREAM_INVALID_RESPONSE"
	ErrorCodeContent    = "UPSTREAM_NON_JSON"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)

// User-facing messages.
const (
	MsgMissingAPIKey = "Server configuration error. The API key is missing."
	MsgMissingFields = "Please provide all required fields: machine, grinder, and beans."
	MsgTransport     = "Failed to reach the AI service."
	MsgTimeout       = "The AI service did not respond in time."
	MsgEmptyResponse = "The AI returned an empty or invalid response."
	MsgNonJSON       = "The AI returned a response that was not valid JSON."
	MsgInternal      = "Failed to get recommendation from the AI."
)
