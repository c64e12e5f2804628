package notes

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/notebook/internal/api/errmap"
	v1 "github.com/evgeniy-krivenko/notebook/pkg/api/notes/v1"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

func toStatus(ctx context.Context, err error) error {
	m := errmap.Map(err)
	if m.Internal() {
		slogx.Error(ctx, "notes api internal error", slogx.Err(err))
	}

	info := &errdetails.ErrorInfo{Reason: m.Reason, Domain: v1.ErrorDomain}
	if m.Field != "" {
		info.Metadata = map[string]string{"field": m.Field}
	}

	st := status.New(m.Code, m.Message)
	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}

	return st.Err()
}
