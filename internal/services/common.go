// Package services holds the entity stores, the subscription synchronizer and the
// read-side aggregates built on db.Querier.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct validation and reports the first failing field.
func validateInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidation(toSnake(fe.Field()), fmt.Sprintf("failed %q validation", fe.Tag()))
	}
	return apperrors.NewValidation("", err.Error())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ListParams is the shared paging and filter surface. Results are newest first.
type ListParams struct {
	Limit     int32
	Offset    int32
	Status    string
	Email     string
	EventType string
}

func (p ListParams) normalized() ListParams {
	p.Limit = helpers.ClampLimit(p.Limit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

func statusFilter(status string) pgtype.Text {
	return helpers.StringToNullableText(status)
}
