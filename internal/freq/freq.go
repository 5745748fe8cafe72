package freq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git-freq/internal/gitlog"
)

// Run 查询提交日志并返回格式化后的每日提交数序列。
// 流程：按窗口查询 → 解析并过滤日期 → 按天计数 → 补齐窗口两端 → 填补空缺 → 格式化。
func Run(src gitlog.Source, b Bounds) (string, error) {
	h, err := Collect(src, b)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// Collect 与 Run 相同，但返回补齐后的 Histogram 而不是字符串。
func Collect(src gitlog.Source, b Bounds) (*Histogram, error) {
	window := b.Window()
	if !window.IsZero() {
		slog.Debug("query window",
			"after", window.After.Format(gitlog.DateLayout),
			"before", window.Before.Format(gitlog.DateLayout),
		)
	}

	output, err := src.Log(window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalQuery, err)
	}

	lines := strings.Split(output, "\n")
	days := b.FilterDates(lines)
	slog.Debug("filtered log", "lines", len(lines), "kept", len(days))

	h := Count(days)
	h.InjectEdges(b)
	h.FillGaps()
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		s := h.Summarize()
		slog.Debug("histogram ready",
			"days", h.Len(),
			"commits", s.TotalCommits,
			"active_days", s.ActiveDays,
			"longest_streak", s.LongestStreak.Days,
			"peak_commits", s.PeakDay.Commits,
		)
	}

	return h, nil
}
