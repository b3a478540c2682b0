package quarry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the typed form of any non-2xx response from the asset
// service. The service reports failures as {"status","detail","request_id"}
// bodies; responses that do not parse still yield a ServiceError carrying
// the status code.
type ServiceError struct {
	StatusCode int
	Status     string
	Detail     string
	RequestID  string
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("asset service responded %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("%s [request %s]", msg, e.RequestID)
	}
	return msg
}

type errorBody struct {
	Status    string `json:"status"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
}

func errorFromResponse(statusCode int, body []byte) *ServiceError {
	serviceErr := &ServiceError{StatusCode: statusCode}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		serviceErr.Status = parsed.Status
		serviceErr.Detail = parsed.Detail
		serviceErr.RequestID = parsed.RequestID
	}

	return serviceErr
}

func IsInvalidArgument(err error) bool {
	return hasStatusCode(err, http.StatusBadRequest)
}

func IsUnauthenticated(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized)
}

func IsPermissionDenied(err error) bool {
	return hasStatusCode(err, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return hasStatusCode(err, http.StatusConflict)
}

func IsTooManyRequests(err error) bool {
	return hasStatusCode(err, http.StatusTooManyRequests)
}

// IsServiceUnavailable reports whether the failure was on the service's side
// (any 5xx response).
func IsServiceUnavailable(err error) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr) && serviceErr.StatusCode >= 500
}

func hasStatusCode(err error, statusCode int) bool {
	var serviceErr *ServiceError
	return errors.As(err, &serviceErr) && serviceErr.StatusCode == statusCode
}
