package devicecode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode 错误代码
type ErrorCode string

const (
	// 输入错误代码
	ErrInvalidDevice ErrorCode = "INVALID_DEVICE"
	ErrMissingField  ErrorCode = "MISSING_FIELD"
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// 加密错误代码
	ErrInvalidPublicKey ErrorCode = "INVALID_PUBLIC_KEY"
	ErrEncryptFailed    ErrorCode = "ENCRYPT_FAILED"
	ErrNonceFailed      ErrorCode = "NONCE_FAILED"

	// 系统错误代码
	ErrSegmentUnresolved ErrorCode = "SEGMENT_UNRESOLVED"
	ErrHostProbeFailed   ErrorCode = "HOST_PROBE_FAILED"
)

// Error 设备码生成错误
type Error struct {
	Code    ErrorCode              // 错误代码
	Message string                 // 错误消息
	Details map[string]interface{} // 错误详情
	Cause   error                  // 原始错误
}

// Error 实现 error 接口
func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("devicecode: [%s]", e.Code), e.Message}
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k, v := range e.Details {
			keys = append(keys, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(keys)
		parts = append(parts, "("+strings.Join(keys, ", ")+")")
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %v", e.Cause))
	}
	return strings.Join(parts, " ")
}

// Is 按错误代码比较，便于 errors.Is(err, &Error{Code: ErrMissingField})
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Unwrap 解包原始错误
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail 添加错误详情
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// newError 创建错误
func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsErrorCode 检查错误链中是否包含指定代码
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
