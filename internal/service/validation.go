package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "coffee-shop-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError turns validator output into an apperrors.ValidationError naming the first failing field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fe.Tag()
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(lowerFirst(fe.Field()), "failed on "+msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// normalizePage clamps pagination input to sane bounds
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
