package gitlog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitSource 使用 go-git 在进程内读取提交历史，不依赖 git 可执行文件。
type GoGitSource struct {
	Dir string
}

// Log 从 HEAD 开始遍历提交历史，按作者日期所在的日历日过滤窗口，
// 每个提交输出一行 %ai 格式的作者日期。
func (s *GoGitSource) Log(w Window) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	// 与 git 一致，允许在仓库的子目录中运行
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repo %s: %w", dir, err)
	}

	ref, err := repo.Head()
	if err != nil {
		// 没有任何提交的仓库
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("head repo %s: %w", dir, err)
	}

	iterator, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return "", fmt.Errorf("log repo %s: %w", dir, err)
	}
	defer iterator.Close()

	bar := newLogProgressBar()
	if bar != nil {
		defer func() { _ = bar.Finish() }()
	}

	var (
		b       strings.Builder
		visited int
	)
	// 历史并非严格按时间排序，因此遍历全部提交而不提前停止
	err = iterator.ForEach(func(c *object.Commit) error {
		visited++
		if bar != nil {
			_ = bar.Add(1)
		}

		when := c.Author.When
		if !w.contains(when.Format(DateLayout)) {
			return nil
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(when.Format(authorDateLayout))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterate repo %s: %w", dir, err)
	}

	slog.Debug("walked history", "dir", dir, "commits", visited)
	return b.String(), nil
}
