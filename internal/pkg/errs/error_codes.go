/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Chat, Forum, and Booking Business Logic Errors
const (
	// ErrMessageEmpty indicates that a chat message was empty or whitespace-only after trimming.
	ErrMessageEmpty = 2101

	// ErrMessageContentTooLong indicates that the chat message exceeded the maximum length limit.
	ErrMessageContentTooLong = 2102

	// ErrPostInvalid indicates that a forum post was missing a title or body.
	ErrPostInvalid = 2201

	// ErrMoodInvalid indicates that a mood check-in value was outside the supported scale.
	ErrMoodInvalid = 2202

	// ErrCounselorNotFound indicates that the requested counselor does not exist.
	ErrCounselorNotFound = 2301

	// ErrSlotUnavailable indicates that the requested booking slot is not offered by the counselor.
	ErrSlotUnavailable = 2302
)

// 3xxx: Session and Security Errors
const (
	// ErrAlreadyLoggedIn indicates that a session already exists for this visitor.
	ErrAlreadyLoggedIn = 3001

	// ErrInvalidEmail indicates that the supplied email address is empty or malformed.
	ErrInvalidEmail = 3002

	// ErrInvalidRole indicates that the supplied role is not one of the known roles.
	ErrInvalidRole = 3003

	// ErrAuthFailed indicates that constructing or persisting an identity failed
	// unexpectedly. The previous session, if any, is left unchanged.
	ErrAuthFailed = 3004

	// ErrUnauthorized indicates that the destination requires a session and none exists.
	ErrUnauthorized = 3101

	// ErrForbidden indicates that the current role is not in the destination's allow-list.
	ErrForbidden = 3102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
