// Package gitlog 提供提交日志的查询后端。
//
// 每个后端都返回以换行分隔的提交记录，每行以作者日期开头
// （格式与 git log --pretty=format:%ai 一致）。
package gitlog

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout 是查询窗口和提交日期使用的日期格式。
const DateLayout = "2006-01-02"

// authorDateLayout 对应 git 的 %ai 输出格式。
const authorDateLayout = "2006-01-02 15:04:05 -0700"

// 支持的后端名称。
const (
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

// Window 是提交日志的日期过滤窗口，两端均包含。
// 零值表示不限制日期。
type Window struct {
	After  time.Time
	Before time.Time
}

// IsZero 报告窗口是否为不限制日期的零值。
func (w Window) IsZero() bool {
	return w.After.IsZero() && w.Before.IsZero()
}

// Args 将窗口渲染为 git log 的 --after/--before 参数。
func (w Window) Args() []string {
	if w.IsZero() {
		return nil
	}
	return []string{
		"--after=" + w.After.Format(DateLayout),
		"--before=" + w.Before.Format(DateLayout),
	}
}

// contains 按日历日判断 day（YYYY-MM-DD）是否落在窗口内。
func (w Window) contains(day string) bool {
	if w.IsZero() {
		return true
	}
	return day >= w.After.Format(DateLayout) && day <= w.Before.Format(DateLayout)
}

// Source 查询提交历史，返回原始文本。
// 查询失败必须返回错误，空历史返回空字符串。
type Source interface {
	Log(w Window) (string, error)
}

// New 根据后端名称构建 Source。
func New(backend, gitBinary, dir string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendExec:
		return &ExecSource{Git: gitBinary, Dir: dir}, nil
	case BackendGoGit:
		return &GoGitSource{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unsupported backend %q (supported: %s, %s)", backend, BackendExec, BackendGoGit)
	}
}
