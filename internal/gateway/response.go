package gateway

// ErrorCode is the standardized error taxonomy shared by all adapters.
// Provider-specific codes are mapped into it; codes without a mapping
// surface as an empty ErrorCode with the provider message intact.
type ErrorCode string

const (
	ErrCodeInvalidCVC      ErrorCode = "invalid_cvc"
	ErrCodeInvalidNumber   ErrorCode = "invalid_number"
	ErrCodeExpiredCard     ErrorCode = "expired_card"
	ErrCodeCardDeclined    ErrorCode = "card_declined"
	ErrCodeProcessingError ErrorCode = "processing_error"
)

// Response is the uniform result of every gateway operation.
//
// Invariants: Success implies an empty ErrorCode, and Authorization is
// populated only on success.
type Response struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Params        map[string]any `json:"params"`
	Authorization string         `json:"authorization,omitempty"`
	Test          bool           `json:"test"`
	ErrorCode     ErrorCode      `json:"error_code,omitempty"`
}
