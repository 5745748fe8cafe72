package freq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 表示日期或天数参数无法解析。
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExternalQuery 表示提交日志查询无法启动或读取。
	ErrExternalQuery = errors.New("failed to query commit log")
)

// ArgumentError 描述一个无法解析的命令行参数。
type ArgumentError struct {
	Kind  string // "date" 或 "number"
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s in argument %q: %v", e.Kind, e.Value, e.Err)
}

// Unwrap 同时暴露 ErrInvalidArgument 和底层解析错误，便于 errors.Is 判断。
func (e *ArgumentError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Err}
}
