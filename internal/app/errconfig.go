package app

type ErrCode string

const (
	ErrInvalidRequest ErrCode = "INVALID_REQUEST"
	ErrUnauthorized   ErrCode = "UNAUTHORIZED"
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrUpstreamFormat ErrCode = "UPSTREAM_FORMAT_ERROR"
	ErrInternal       ErrCode = "INTERNAL_SERVER_ERROR"
)

// AppError carries a coded, caller-safe message. The wrapped cause is
// logged but never serialized.
type AppError struct {
	Code  ErrCode
	Msg   string
	cause error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Msg + ": " + e.cause.Error()
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func appErr(code ErrCode, msg string) *AppError {
	return &AppError{Code: code, Msg: msg}
}

func wrapErr(code ErrCode, msg string, cause error) *AppError {
	return &AppError{Code: code, Msg: msg, cause: cause}
}

func statusCode(code ErrCode) int {
	switch code {
	case ErrInvalidRequest:
		return 400
	case ErrUnauthorized:
		return 401
	case ErrForbidden:
		return 403
	case ErrNotFound:
		return 404
	default:
		return 500
	}
}
