package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation on it. Unknown fields are rejected to catch client typos.
func decodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		// An empty body is treated as the zero request; required-field
		// validation below still applies.
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return &ErrValidation{
				Field:   strings.ToLower(first.Field()),
				Message: fmt.Sprintf("failed on the '%s' rule", first.Tag()),
			}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	return nil
}
