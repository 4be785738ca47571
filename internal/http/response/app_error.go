package response

// AppError 携带业务码与 i18n 键的错误包装
type AppError struct {
	Code    int
	Key     string
	Message string
	Err     error
}

// NewAppError 创建错误包装，key 为对应的 i18n 消息键，可为空
func NewAppError(code int, key, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Key:     key,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
