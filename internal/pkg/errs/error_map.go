/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Chat, Forum, and Booking Business Logic Errors
	ErrMessageEmpty:          {Code: ErrMessageEmpty, Message: "Please enter a message first."},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long."},
	ErrPostInvalid:           {Code: ErrPostInvalid, Message: "A post needs both a title and some content."},
	ErrMoodInvalid:           {Code: ErrMoodInvalid, Message: "Please pick a mood from the scale."},
	ErrCounselorNotFound:     {Code: ErrCounselorNotFound, Message: "Counselor not found.", Status: http.StatusNotFound},
	ErrSlotUnavailable:       {Code: ErrSlotUnavailable, Message: "That time slot is not available. Please pick another one."},

	// 3xxx: Session and Security Errors
	ErrAlreadyLoggedIn: {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrInvalidEmail:    {Code: ErrInvalidEmail, Message: "Please enter a valid email address."},
	ErrInvalidRole:     {Code: ErrInvalidRole, Message: "Unknown account role."},
	ErrAuthFailed:      {Code: ErrAuthFailed, Message: "Sign-in failed. Please try again."},
	ErrUnauthorized:    {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrForbidden:       {Code: ErrForbidden, Message: "You do not have access to this area.", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
