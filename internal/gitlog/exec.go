package gitlog

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// noCommitsMarker 出现在 git 对空仓库执行 log 时的错误输出中。
const noCommitsMarker = "does not have any commits yet"

// ExecSource 通过调用 git 可执行文件查询提交日志。
type ExecSource struct {
	Git string // git 可执行文件，为空时使用 "git"
	Dir string // 命令的工作目录，为空时使用当前目录
}

// Log 执行 git --no-pager log --pretty=format:%ai 并返回其标准输出。
// 命令同步运行，没有超时。
func (s *ExecSource) Log(w Window) (string, error) {
	git := s.Git
	if git == "" {
		git = "git"
	}

	args := append([]string{"--no-pager", "log", "--pretty=format:%ai"}, w.Args()...)
	cmd := exec.Command(git, args...)
	cmd.Dir = s.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("running git", "git", git, "args", args, "dir", s.Dir)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("execute %s: %w", git, err)
		}
		msg := strings.TrimSpace(stderr.String())
		// 尚无提交的仓库视为空历史
		if strings.Contains(msg, noCommitsMarker) {
			return "", nil
		}
		if msg == "" {
			msg = exitErr.Error()
		}
		return "", fmt.Errorf("%s log: %s", git, msg)
	}

	return strings.ToValidUTF8(string(out), "�"), nil
}
