package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/go-site-content/internal/auth"
	"github.com/pribylovaa/go-site-content/internal/service"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromService(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service/news/X: %w", err) }

	tcs := []struct {
		name string
		in   error
		want codes.Code
	}{
		{"invalid", wrap(service.ErrInvalidArgument), codes.InvalidArgument},
		{"not_found", wrap(service.ErrNotFound), codes.NotFound},
		{"conflict", wrap(service.ErrConflict), codes.AlreadyExists},
		{"unauthorized", wrap(service.ErrUnauthorized), codes.Unauthenticated},
		{"bad_credentials", auth.ErrInvalidCredentials, codes.Unauthenticated},
		{"expired", wrap(auth.ErrTokenExpired), codes.Unauthenticated},
		{"canceled", wrap(context.Canceled), codes.Canceled},
		{"deadline", wrap(context.DeadlineExceeded), codes.DeadlineExceeded},
		{"internal", wrap(service.ErrInternal), codes.Internal},
		{"unknown", stderrors.New("boom"), codes.Internal},
		{"status passthrough", status.Error(codes.Unavailable, "x"), codes.Unavailable},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, status.Code(FromService(tc.in)))
		})
	}

	require.NoError(t, FromService(nil))
}

// TestFromService_NoLeak — детали внутренней ошибки не попадают в сообщение.
func TestFromService_NoLeak(t *testing.T) {
	st, ok := status.FromError(FromService(stderrors.New("mongo: auth failed for user root")))
	require.True(t, ok)
	require.Equal(t, "internal server error", st.Message())
}

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", status.Error(codes.InvalidArgument, "x"), http.StatusBadRequest, "invalid_argument"},
		{"not_found", status.Error(codes.NotFound, "x"), http.StatusNotFound, "not_found"},
		{"already_exists", status.Error(codes.AlreadyExists, "x"), http.StatusConflict, "already_exists"},
		{"failed_prec", status.Error(codes.FailedPrecondition, "x"), http.StatusPreconditionFailed, "failed_precondition"},
		{"unauth", status.Error(codes.Unauthenticated, "x"), http.StatusUnauthorized, "unauthenticated"},
		{"perm_denied", status.Error(codes.PermissionDenied, "x"), http.StatusForbidden, "permission_denied"},
		{"res_exhausted", status.Error(codes.ResourceExhausted, "x"), http.StatusTooManyRequests, "resource_exhausted"},
		{"canceled", status.Error(codes.Canceled, "x"), StatusClientClosedRequest, "canceled"},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unavailable", status.Error(codes.Unavailable, "x"), http.StatusServiceUnavailable, "unavailable"},
		{"unimplemented", status.Error(codes.Unimplemented, "x"), http.StatusNotImplemented, "unimplemented"},
		{"internal", status.Error(codes.Internal, "x"), http.StatusInternalServerError, "internal"},
		{"service not found", fmt.Errorf("op: %w", service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"service unauthorized", fmt.Errorf("op: %w", service.ErrUnauthorized), http.StatusUnauthorized, "unauthenticated"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_Envelope(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/news/x", nil)
	r.Header.Set(HeaderRequestID, "rid-1")
	w := httptest.NewRecorder()

	WriteError(w, r, fmt.Errorf("op: %w", service.ErrNotFound))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, ErrorResponse{Error: APIError{Code: "not_found", Message: "not found", RequestID: "rid-1"}}, body)
}

func TestWriteStatus_PrefersResponseRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/news", nil)
	w := httptest.NewRecorder()
	w.Header().Set(HeaderRequestID, "from-mw")

	WriteStatus(w, r, http.StatusBadRequest, "bad_request", "malformed body")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "from-mw", body.Error.RequestID)
	require.Equal(t, "bad_request", body.Error.Code)
}
