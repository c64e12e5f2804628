package notesv1

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain is set on every errdetails.ErrorInfo the NoteAPI returns.
const ErrorDomain = "notebook.v1"

const (
	ReasonUnauthorized    = "UNAUTHORIZED"
	ReasonNotFound        = "NOT_FOUND"
	ReasonDuplicateName   = "DUPLICATE_NAME"
	ReasonCategoryInUse   = "CATEGORY_IN_USE"
	ReasonInvalidCategory = "INVALID_CATEGORY"
	ReasonConflict        = "CONFLICT"
	ReasonValidation      = "VALIDATION"
	ReasonInternal        = "INTERNAL"
)

// ErrorInfo extracts the NoteAPI error details from a gRPC error.
func ErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info, true
		}
	}

	return nil, false
}
