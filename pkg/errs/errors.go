package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusStoreUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrUnauthorized       = errors.New("Unauthorized access")
	ErrInvalidComponent   = errors.New("Invalid payment component")
	ErrConfiguration      = errors.New("Payment processor is misconfigured")
	ErrStoreUnavailable   = errors.New("Store is unavailable")
	ErrMissingField       = errors.New("Missing or invalid field")
	ErrObligationNotFound = errors.New("Contribution not found")
	ErrInvalidMode        = errors.New("Invalid processor mode")
	ErrInvalidReturnURL   = errors.New("Invalid return URL")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrUnauthorized:       ErrStatusUnauthorized,
	ErrInvalidComponent:   ErrStatusClient,
	ErrConfiguration:      ErrStatusInternalServer,
	ErrStoreUnavailable:   ErrStatusStoreUnavailable,
	ErrMissingField:       ErrStatusClient,
	ErrObligationNotFound: ErrStatusNotFound,
	ErrInvalidMode:        ErrStatusInternalServer,
	ErrInvalidReturnURL:   ErrStatusClient,
}

// GetErrorStatusCode resolves wrapped errors as well, so callers may add
// detail with fmt.Errorf("%w: ...").
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for target, errStatusCode := range errorMap {
		if errors.Is(err, target) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
