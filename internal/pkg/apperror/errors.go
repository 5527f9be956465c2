package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/image-variants/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Details    any    `json:"details,omitempty"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// VariantDetails is attached to errors raised while writing variants so the
// caller can clean up the files that were stored.
type VariantDetails struct {
	Label   string   `json:"label"`
	Stage   string   `json:"stage"`
	Written []string `json:"written"`
}

type mapping struct {
	target error
	code   string
	status int
	// public messages expose err.Error(); the rest use message
	public  bool
	message string
}

// Order matters: a partial upload also matches the stage sentinel.
var mappings = []mapping{
	{domain.ErrInvalidRequest, "INVALID_REQUEST", http.StatusBadRequest, true, ""},
	{domain.ErrInvalidDimension, "INVALID_DIMENSION", http.StatusBadRequest, true, ""},
	{domain.ErrInvalidResizeMode, "INVALID_RESIZE_MODE", http.StatusBadRequest, true, ""},
	{domain.ErrUnsupportedFormat, "UNSUPPORTED_FORMAT", http.StatusUnsupportedMediaType, true, ""},
	{domain.ErrDecode, "DECODE_FAILED", http.StatusUnprocessableEntity, true, ""},
	{domain.ErrVariantSetNotFound, "NOT_FOUND", http.StatusNotFound, false, "variant set not found"},
	{domain.ErrTokenInvalid, "TOKEN_INVALID", http.StatusUnauthorized, false, "invalid or expired token"},
	{domain.ErrUnauthorized, "UNAUTHORIZED", http.StatusUnauthorized, false, "unauthorized"},
	{domain.ErrPartialUpload, "PARTIAL_UPLOAD", http.StatusInternalServerError, false, "upload stopped after some variants were written"},
	{domain.ErrEncode, "ENCODE_FAILED", http.StatusInternalServerError, false, "encoding a variant failed"},
	{domain.ErrStorage, "STORAGE_ERROR", http.StatusInternalServerError, false, "storing the upload failed"},
}

// FromError converts err into an AppError. Domain sentinels get their own
// codes; anything else is an internal error.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range mappings {
		if !errors.Is(err, m.target) {
			continue
		}

		result := &AppError{Code: m.code, StatusCode: m.status, Message: m.message, Err: err}
		if m.public {
			result.Message = err.Error()
		}

		var variantErr *domain.VariantError
		if errors.As(err, &variantErr) {
			result.Details = VariantDetails{
				Label:   variantErr.Label,
				Stage:   variantErr.Stage,
				Written: variantErr.Written,
			}
		}
		return result
	}

	return Internal(err)
}

func StatusCode(err error) int {
	return FromError(err).StatusCode
}
