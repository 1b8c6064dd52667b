package apperrors

import (
	"fmt"
	"net/http"
	"time"

	"facegate.io/infrastructure/logger"
	server_response "facegate.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed 🙄", nil, *errMessages, nil)
}

func EntityAlreadyExistsError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil, nil)
}

func AuthenticationError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil, nil)
}

// SecurityError rejects abuse-guard violations. The caller only ever sees a
// generic denial, details belong in the security log.
func SecurityError(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusForbidden, "request rejected 👮🏻‍♂️", nil, nil, nil)
}

// RateLimitError surfaces the window reset time so clients can back off.
func RateLimitError(ctx interface{}, resetTime time.Time) {
	server_response.Responder.Respond(ctx, http.StatusTooManyRequests,
		"You are going too fast! You have been ratelimited.", map[string]any{
			"resetTime": resetTime,
		}, nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed 🤨", nil, nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Omo! Our service is temporarily down 😢. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func UnknownError(ctx interface{}, err error) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"Omo! Something went wrong somewhere 😭. Please check back later.", nil, nil, nil)
}

func ExternalDependencyError(ctx interface{}, serviceName string, statusCode string, err error) {
	logger.Error(err.Error(), logger.LoggerOptions{
		Key: fmt.Sprintf("error with %s. status code %s", serviceName, statusCode),
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"Omo! Our service is temporarily down 😢. Our team is working to fix it. Please check back later.", nil, nil, nil)
}

func MalformedHeader(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"malformed header information 👮🏻‍♂️", nil, nil, nil)
}

func ClientError(ctx interface{}, msg string, errs []error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs, nil)
}
