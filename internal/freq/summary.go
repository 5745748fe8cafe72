package freq

import "time"

// Streak 表示连续提交天数的区间信息。
type Streak struct {
	Days  int
	Start time.Time
	End   time.Time
}

// DayStat 表示单日最高提交统计。
type DayStat struct {
	Date    time.Time
	Commits int
}

// Summary 是 Histogram 的统计摘要，用于调试日志。
type Summary struct {
	TotalCommits  int
	ActiveDays    int
	LongestStreak Streak
	PeakDay       DayStat
}

// Summarize 计算提交总数、活跃天数、最长连续提交区间和提交最多的一天。
// 并列时取较晚的一段或一天。
func (h *Histogram) Summarize() Summary {
	var (
		out Summary
		cur Streak
	)
	for i, bucket := range h.buckets {
		if bucket.Count <= 0 {
			cur = Streak{}
			continue
		}

		out.TotalCommits += bucket.Count
		out.ActiveDays++
		if bucket.Count >= out.PeakDay.Commits {
			out.PeakDay = DayStat{Date: bucket.Day, Commits: bucket.Count}
		}

		// Histogram 未填补空缺时，相邻元素不一定相差一天
		if cur.Days > 0 && i > 0 && daysBetween(h.buckets[i-1].Day, bucket.Day) == 1 {
			cur.Days++
			cur.End = bucket.Day
		} else {
			cur = Streak{Days: 1, Start: bucket.Day, End: bucket.Day}
		}
		if cur.Days >= out.LongestStreak.Days {
			out.LongestStreak = cur
		}
	}
	return out
}
