package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrModelTransport     = errors.New("model request failed")
	ErrEmptyModelResponse = errors.New("no content received from model")
	ErrDecodeFailed       = errors.New("failed to parse model response as JSON")
	ErrInvalidPlanFormat  = errors.New("response does not match expected format")
	ErrInvalidBatch       = errors.New("invalid suggestion batch")
	ErrStreamProtocol     = errors.New("malformed stream payload")
	ErrStreamUnsupported  = errors.New("streaming not supported by provider")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrPlacesUnavailable  = errors.New("failed to fetch nearby places")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrShareTokenInvalid  = errors.New("invalid or expired share token")
	ErrDatabaseError      = errors.New("database error")
)
