// errors стандартизирует ответы об ошибках HTTP-слоя content-service.
//
// Путь ошибки: sentinel сервисного слоя -> gRPC-статус (FromService)
// -> HTTP-статус и безопасное сообщение (ToHTTP).
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-site-content/internal/auth"
	"github.com/pribylovaa/go-site-content/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// HeaderRequestID — заголовок корреляции запроса.
const HeaderRequestID = "X-Request-Id"

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// FromService переводит ошибку сервисного или auth-слоя в gRPC-статус.
// Уже готовый статус возвращается как есть.
//
//   - ErrInvalidArgument -> InvalidArgument;
//   - ErrNotFound -> NotFound;
//   - ErrConflict -> AlreadyExists;
//   - ErrUnauthorized, auth.Err* -> Unauthenticated;
//   - context.Canceled / DeadlineExceeded -> Canceled / DeadlineExceeded;
//   - прочее -> Internal с безопасным сообщением.
func FromService(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case stderrors.Is(err, service.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, "invalid argument")
	case stderrors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case stderrors.Is(err, service.ErrConflict):
		return status.Error(codes.AlreadyExists, "already exists")
	case stderrors.Is(err, service.ErrUnauthorized),
		stderrors.Is(err, auth.ErrInvalidCredentials),
		stderrors.Is(err, auth.ErrInvalidToken),
		stderrors.Is(err, auth.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// ToHTTP конвертирует входную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal,
//     чтобы не послать "200 OK" с телом ошибки;
//   - ошибки сервиса сначала проходят через FromService;
//   - gRPC-статус маппится через baseFromGRPC().
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	st, _ := status.FromError(FromService(err))

	httpStatus, code, msg := baseFromGRPC(st.Code())
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id (из ответа либо из запроса).
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code, resp := ToHTTP(err)

	rid := w.Header().Get(HeaderRequestID)
	if rid == "" {
		rid = r.Header.Get(HeaderRequestID)
	}
	resp.Error.RequestID = rid

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteStatus пишет ответ об ошибке с явным HTTP-статусом
// (битое тело запроса, неизвестный маршрут и т.п.).
func WriteStatus(w http.ResponseWriter, r *http.Request, httpStatus int, code, msg string) {
	rid := w.Header().Get(HeaderRequestID)
	if rid == "" {
		rid = r.Header.Get(HeaderRequestID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: APIError{Code: code, Message: msg, RequestID: rid}})
}

// baseFromGRPC — базовый маппинг gRPC -> HTTP/FE-код/сообщение.
//   - InvalidArgument -> 400
//   - NotFound -> 404
//   - AlreadyExists -> 409
//   - FailedPrecondition -> 412
//   - Unauthenticated -> 401
//   - PermissionDenied -> 403
//   - ResourceExhausted -> 429
//   - Aborted -> 409
//   - Canceled -> 499 (клиент закрыл соединение)
//   - DeadlineExceeded -> 504
//   - Unavailable -> 503
//   - Unimplemented -> 501
//   - прочее -> 500/internal
func baseFromGRPC(c codes.Code) (int, string, string) {
	switch c {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case codes.NotFound:
		return http.StatusNotFound, "not_found", "not found"
	case codes.AlreadyExists:
		return http.StatusConflict, "already_exists", "already exists"
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed, "failed_precondition", "failed precondition"
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case codes.PermissionDenied:
		return http.StatusForbidden, "permission_denied", "permission denied"
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests, "resource_exhausted", "resource exhausted"
	case codes.Aborted:
		return http.StatusConflict, "aborted", "aborted"
	case codes.Canceled:
		return StatusClientClosedRequest, "canceled", "canceled"
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case codes.Unavailable:
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	case codes.Unimplemented:
		return http.StatusNotImplemented, "unimplemented", "unimplemented"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
