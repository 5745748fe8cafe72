// Package freq 按日历日统计提交频率，并输出连续的每日提交数序列。
package freq

import (
	"strconv"
	"strings"
	"time"

	"git-freq/internal/gitlog"
)

// Bounds 是一次运行的统计窗口，构造后不可变。
type Bounds struct {
	upper         time.Time
	lowerRelative int
	bounded       bool
}

// Unbounded 返回只有上界、不限制窗口的 Bounds。
func Unbounded(upper time.Time) Bounds {
	return Bounds{upper: beginningOfDay(upper)}
}

// NewBounds 返回以 upper 为参照、向前或向后偏移 lowerRelative 天的 Bounds。
func NewBounds(upper time.Time, lowerRelative int) Bounds {
	return Bounds{upper: beginningOfDay(upper), lowerRelative: lowerRelative, bounded: true}
}

// ResolveBounds 根据位置参数解析统计窗口。
// 只有恰好两个参数 <YYYY-MM-DD> <天数> 时才启用窗口，其余参数个数一律使用默认值。
// 天数向零方向调整一天，把包含两端的天数换算为到另一端的偏移量。
func ResolveBounds(args []string, now time.Time) (Bounds, error) {
	if len(args) != 2 {
		return Unbounded(now), nil
	}

	upper, err := time.Parse(gitlog.DateLayout, args[0])
	if err != nil {
		return Bounds{}, &ArgumentError{Kind: "date", Value: args[0], Err: err}
	}

	days, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return Bounds{}, &ArgumentError{Kind: "number", Value: args[1], Err: err}
	}
	if days < 0 {
		days++
	} else {
		days--
	}

	return NewBounds(upper, int(days)), nil
}

// Upper 返回上界所在的日期。
func (b Bounds) Upper() time.Time {
	return b.upper
}

// LowerRelative 返回相对偏移天数；ok 为 false 表示不限制窗口。
func (b Bounds) LowerRelative() (days int, ok bool) {
	return b.lowerRelative, b.bounded
}

// other 返回窗口的另一端。
func (b Bounds) other() time.Time {
	return b.upper.AddDate(0, 0, b.lowerRelative)
}

// Window 把 Bounds 转换为日志查询窗口。
// 无论偏移的正负，After 总是较早的一端，Before 总是较晚的一端。
func (b Bounds) Window() gitlog.Window {
	if !b.bounded {
		return gitlog.Window{}
	}
	other := b.other()
	if other.Before(b.upper) {
		return gitlog.Window{After: other, Before: b.upper}
	}
	return gitlog.Window{After: b.upper, Before: other}
}

// FilterDates 从日志行中提取日期。
// 空行、无法解析的行以及距上界超过 |偏移| 天的日期都会被静默丢弃。
func (b Bounds) FilterDates(lines []string) []time.Time {
	limit := abs(b.lowerRelative)

	out := make([]time.Time, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		token, _, _ := strings.Cut(line, " ")
		day, err := time.Parse(gitlog.DateLayout, token)
		if err != nil {
			continue
		}
		// 查询已按窗口过滤，这里再按日历日检查一次
		if b.bounded && abs(daysBetween(b.upper, day)) > limit {
			continue
		}
		out = append(out, day)
	}
	return out
}

// beginningOfDay 返回 t 所在日历日的 UTC 零点。
// 所有日期都用 UTC 零点表示，天数差不受夏令时影响。
func beginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// secondsPerDay 是一个日历日的秒数，日期均为 UTC 零点，没有闰秒和夏令时偏差。
const secondsPerDay = 24 * 60 * 60

// daysBetween 返回从 from 到 to 的整天数。
// 使用 Unix 秒计算，time.Sub 在相差约 292 年以上时会饱和。
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
