package services

import "net/http"

// ServiceError is a failure the request layer translates verbatim into a
// response. Ownership failures are reported as NotFound on purpose, so a
// caller cannot distinguish "absent" from "owned by someone else".
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Status: http.StatusNotFound, Message: message}
}

func BadRequest(message string) *ServiceError {
	return &ServiceError{Status: http.StatusBadRequest, Message: message}
}
