package gitlog

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// isTerminal 抽象终端检测以便测试。
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// newLogProgressBar 创建遍历提交历史时的进度指示器。
// 提交总数未知，因此使用旋转指示器；仅在 stderr 为终端时显示。
func newLogProgressBar() *progressbar.ProgressBar {
	if !isTerminal() {
		return nil
	}

	return progressbar.NewOptions(
		-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("reading history"),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}
