package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid upload request")
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInvalidResizeMode  = errors.New("invalid resize mode")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrDecode             = errors.New("decoding image")
	ErrEncode             = errors.New("encoding image")
	ErrStorage            = errors.New("storage operation failed")
	ErrPartialUpload      = errors.New("upload partially completed")
	ErrVariantSetNotFound = errors.New("variant set not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Stages a single variant goes through after the source has been decoded.
const (
	StageResize = "resize"
	StageEncode = "encode"
	StageWrite  = "write"
)

// VariantError reports the variant that stopped an upload and the names that
// were already written before it. Written files are left in place.
type VariantError struct {
	Label   string
	Stage   string
	Written []string
	Err     error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant %s: %s: %v (%d written)", e.Label, e.Stage, e.Err, len(e.Written))
}

func (e *VariantError) Unwrap() []error {
	if len(e.Written) > 0 {
		return []error{ErrPartialUpload, e.Err}
	}
	return []error{e.Err}
}
