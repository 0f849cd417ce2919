package zerror

// Status classifies a ZError independently of any transport.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusUnauthorized
	StatusNotFound
	StatusConflict
	StatusBadRequest
	StatusValidationFailed
	StatusInternalServerError
)

var statusNames = map[Status]string{
	StatusUnknown:             "UNKNOWN",
	StatusUnauthorized:        "UNAUTHORIZED",
	StatusNotFound:            "NOT_FOUND",
	StatusConflict:            "CONFLICT",
	StatusBadRequest:          "BAD_REQUEST",
	StatusValidationFailed:    "VALIDATION_FAILED",
	StatusInternalServerError: "INTERNAL_SERVER_ERROR",
}

// String returns the string representation of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}
