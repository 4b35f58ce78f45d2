package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the JSON field names clients sent,
	// not the Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithFieldErrors returns a 400 carrying a field -> message map so the
// caller sees every invalid field, not just the first one.
func abortWithFieldErrors(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

// abortWithBindingError translates a ShouldBindJSON failure into the
// structured field-error payload. Validator failures enumerate every bad
// field; JSON type mismatches (e.g. a string where a number belongs) name
// the offending field too.
func abortWithBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		abortWithFieldErrors(c, fields)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		abortWithFieldErrors(c, map[string]string{
			typeErr.Field: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
		return
	}

	abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// checkOptionalFormat applies a format rule to a patch value that carries
// one. A nil pointer means the field was absent and an explicit empty string
// clears it; neither is a value to validate, so both skip the rule.
func checkOptionalFormat(fields map[string]string, name string, value *string, rule string) {
	if value == nil || *value == "" {
		return
	}
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.Var(*value, rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields[name] = validationMessage(verrs[0])
		} else {
			fields[name] = "is invalid"
		}
	}
}

// parseIDParam converts a numeric path parameter. Non-numeric input is a
// client error; a numeric id outside the assigned range (ids start at 1)
// can never name a resource, so it reads as not found.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	if id <= 0 {
		abortWithError(c, http.StatusNotFound, fmt.Sprintf("No resource with %s %d", name, id))
		return 0, false
	}
	return id, true
}
