package response

import "github.com/gin-gonic/gin"

// Error codes shared between the service and handler layers
const (
	ErrCodeNotFound               = "NOT_FOUND"
	ErrCodeAlreadyExists          = "ALREADY_EXISTS"
	ErrCodeValidation             = "VALIDATION_ERROR"
	ErrCodeUnauthorized           = "UNAUTHORIZED"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeInternal               = "INTERNAL_ERROR"
	ErrCodeInvalidStage           = "INVALID_STAGE"
	ErrCodeMissingFinancialChoice = "MISSING_FINANCIAL_CHOICE"
	ErrCodeLedgerWrite            = "LEDGER_WRITE_FAILURE"
)

// AppError is the error type returned by the service layer
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorBody is the error payload of the response envelope
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the common JSON response envelope
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// SendError sends an error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess sends a success response with data
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
	})
}

// SendMessage sends a success response with a message only
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
	})
}
