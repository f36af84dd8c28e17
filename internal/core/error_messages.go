package core

// # Error Codes Reference
//
// User-facing messages with codes for support reference. When the dashboard
// cannot be built, the page shows the message, the action and the code; the
// technical error goes to the log with the request and run IDs.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File access: The station data file could not be opened
//	          Action: Check DATA_PATH and the file permissions
//	          Match: *FileAccessError
//
//	FILE002 - Invalid CSV: The station data file is not valid delimited text
//	          Action: Make sure every row has the same number of columns
//	          Match: *ParseError, "invalid csv"
//
//	FILE003 - Encoding error: The station data file is not UTF-8
//	          Action: Save the file with UTF-8 encoding
//	          Match: ErrEncoding, "encoding error"
//
// # Value Errors (VAL001-VAL099)
//
//	VAL002 - Invalid value: A value in the file could not be interpreted
//	         Action: Check the opening years and coordinates in the file
//	         Match: ErrInvalidValue, "invalid value"
//
//	VAL004 - Missing column: A required column is missing from the file
//	         Action: Check the header row against the expected station columns
//	         Match: ErrColumnNotFound, "column not found"
//
// # Data Errors (DATA001-DATA099)
//
//	DATA001 - No complete rows: Every row is missing at least one value
//	          Action: Fill in the missing values in the file
//	          Match: ErrNoData, "no complete rows"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled: The request was cancelled
//	         Match: "context canceled"
//
//	REQ002 - Request timeout: Building the dashboard took too long
//	         Match: "context deadline exceeded"
//
//	RATE001 - Rate limited: Too many requests
//	          Match: "rate limit"
//
//	RATE002 - Busy: Every build slot is taken
//	          Action: Please try again in a few seconds
//	          Match: ErrBusy, "too many dashboard builds"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the application logs for the technical error
//
// # Matching
//
// Sentinel and typed errors are checked first with errors.Is and errors.As,
// so wrapping never hides them. Anything else falls back to case-insensitive
// substring patterns; the first match wins.

import (
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

var (
	msgFileAccess = UserMessage{
		Message: "The station data file could not be opened",
		Action:  "Check DATA_PATH and the file permissions",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "The station data file is not valid delimited text",
		Action:  "Make sure every row has the same number of columns",
		Code:    "FILE002",
	}
	msgEncoding = UserMessage{
		Message: "The station data file is not UTF-8",
		Action:  "Save the file with UTF-8 encoding",
		Code:    "FILE003",
	}
	msgInvalidValue = UserMessage{
		Message: "A value in the station data could not be interpreted",
		Action:  "Check the opening years and coordinates in the file",
		Code:    "VAL002",
	}
	msgMissingColumn = UserMessage{
		Message: "A required column is missing from the station data",
		Action:  "Check the header row against the expected station columns",
		Code:    "VAL004",
	}
	msgNoData = UserMessage{
		Message: "Every row in the station data is missing at least one value",
		Action:  "Fill in the missing values in the file",
		Code:    "DATA001",
	}
	msgBusy = UserMessage{
		Message: "The dashboard is busy",
		Action:  "Please try again in a few seconds",
		Code:    "RATE002",
	}
)

// errorTarget matches an error by identity or type.
type errorTarget struct {
	match func(error) bool
	msg   UserMessage
}

// errorTargets are checked in order before errorPatterns. Encoding is
// checked before ParseError because encoding failures are ParseErrors.
var errorTargets = []errorTarget{
	{func(err error) bool { return errors.Is(err, ErrEncoding) }, msgEncoding},
	{func(err error) bool { var fe *FileAccessError; return errors.As(err, &fe) }, msgFileAccess},
	{func(err error) bool { var pe *ParseError; return errors.As(err, &pe) }, msgInvalidCSV},
	{func(err error) bool { return errors.Is(err, ErrColumnNotFound) }, msgMissingColumn},
	{func(err error) bool { return errors.Is(err, ErrInvalidValue) }, msgInvalidValue},
	{func(err error) bool { return errors.Is(err, ErrNoData) }, msgNoData},
	{func(err error) bool { return errors.Is(err, ErrBusy) }, msgBusy},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text (case-insensitive) to user messages
// for errors that lost their identity, such as ones crossing a process
// boundary as strings.
var errorPatterns = []errorPattern{
	{pattern: "encoding error", msg: msgEncoding},
	{pattern: "file access", msg: msgFileAccess},
	{pattern: "invalid csv", msg: msgInvalidCSV},
	{pattern: "column not found", msg: msgMissingColumn},
	{pattern: "invalid value", msg: msgInvalidValue},
	{pattern: "no complete rows", msg: msgNoData},
	{pattern: "too many dashboard builds", msg: msgBusy},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Building the dashboard took too long",
			Action:  "Please try again or raise SERVER_REQUEST_TIMEOUT",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the application logs for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If nothing matches, a generic fallback message with code ERR000 is returned.
//
// Example:
//
//	_, err := core.LoadFile("missing.csv")
//	msg := core.MapError(err)
//	// msg.Code == "FILE001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, et := range errorTargets {
		if et.match(err) {
			return et.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
