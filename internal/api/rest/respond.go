package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/evgeniy-krivenko/notebook/internal/api/errmap"
	"github.com/evgeniy-krivenko/notebook/internal/ctxtr"
	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

const maxBodySize = 4 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func ownerID(r *http.Request) string {
	id, _ := ctxtr.UserID(r.Context())
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	m := errmap.Map(err)
	if m.Internal() {
		slogx.Error(r.Context(), "rest api internal error",
			slogx.UserId(ownerID(r)),
			slogx.Err(err),
		)
	}

	writeJSON(w, m.Status, errorResponse{Error: errorBody{
		Code:    m.Reason,
		Message: m.Message,
		Field:   m.Field,
	}})
}

// decode reads a JSON body into dst. An absent body is accepted only when
// optional is set.
func decode(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return entity.NewValidationError("body", "malformed JSON")
	}

	return nil
}
