// Package logging 构建写入 stderr 的结构化日志。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New 创建文本格式的 logger 并设置为默认 logger。
// 日志只写入 w（通常是 stderr），不会混入标准输出中的结果。
func New(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, nil
}
