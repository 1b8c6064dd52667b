package server_response

type serverResponder interface {
	Respond(ctx interface{}, code int, message string, payload interface{}, errs []error, responseCode *uint)
}

var Responder serverResponder = ginResponder{}
