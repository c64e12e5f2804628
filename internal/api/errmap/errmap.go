// Package errmap classifies use case errors for the transports.
package errmap

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	v1 "github.com/evgeniy-krivenko/notebook/pkg/api/notes/v1"
)

const internalMessage = "internal error, try again"

type Mapping struct {
	Code    codes.Code
	Status  int
	Reason  string
	Message string
	// Field is set for validation errors.
	Field string
}

func (m Mapping) Internal() bool {
	return m.Reason == v1.ReasonInternal
}

var table = []struct {
	target error
	code   codes.Code
	status int
	reason string
}{
	{entity.ErrUnauthorized, codes.Unauthenticated, http.StatusUnauthorized, v1.ReasonUnauthorized},
	{entity.ErrNotFound, codes.NotFound, http.StatusNotFound, v1.ReasonNotFound},
	{entity.ErrDuplicateName, codes.AlreadyExists, http.StatusConflict, v1.ReasonDuplicateName},
	{entity.ErrCategoryInUse, codes.FailedPrecondition, http.StatusConflict, v1.ReasonCategoryInUse},
	{entity.ErrInvalidCategory, codes.InvalidArgument, http.StatusUnprocessableEntity, v1.ReasonInvalidCategory},
	{entity.ErrConflict, codes.Aborted, http.StatusConflict, v1.ReasonConflict},
}

// Map never exposes the text of a non-business error.
func Map(err error) Mapping {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return Mapping{
			Code:    codes.InvalidArgument,
			Status:  http.StatusBadRequest,
			Reason:  v1.ReasonValidation,
			Message: verr.Error(),
			Field:   verr.Field,
		}
	}

	for _, row := range table {
		if errors.Is(err, row.target) {
			return Mapping{
				Code:    row.code,
				Status:  row.status,
				Reason:  row.reason,
				Message: row.target.Error(),
			}
		}
	}

	return Mapping{
		Code:    codes.Internal,
		Status:  http.StatusInternalServerError,
		Reason:  v1.ReasonInternal,
		Message: internalMessage,
	}
}
