package freq

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Bucket 是单日的提交数。
type Bucket struct {
	Day   time.Time
	Count int
}

// Histogram 是按日期升序排列的每日提交数，日期唯一。
type Histogram struct {
	buckets []Bucket
}

// Count 按日历日累计提交数。
func Count(days []time.Time) *Histogram {
	counts := make(map[time.Time]int)
	for _, day := range days {
		counts[beginningOfDay(day)]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for day, n := range counts {
		buckets = append(buckets, Bucket{Day: day, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Day.Before(buckets[j].Day) })

	return &Histogram{buckets: buckets}
}

// Len 返回日期个数。
func (h *Histogram) Len() int {
	return len(h.buckets)
}

// Buckets 返回按日期升序排列的副本。
func (h *Histogram) Buckets() []Bucket {
	out := make([]Bucket, len(h.buckets))
	copy(out, h.buckets)
	return out
}

// ensure 在 day 不存在时插入一个计数为 0 的日期，保持升序。
func (h *Histogram) ensure(day time.Time) {
	day = beginningOfDay(day)
	i := sort.Search(len(h.buckets), func(i int) bool { return !h.buckets[i].Day.Before(day) })
	if i < len(h.buckets) && h.buckets[i].Day.Equal(day) {
		return
	}
	h.buckets = append(h.buckets, Bucket{})
	copy(h.buckets[i+1:], h.buckets[i:])
	h.buckets[i] = Bucket{Day: day}
}

// InjectEdges 在有提交的日期数少于 |偏移| 时，为窗口两端补上 0，
// 使输出覆盖整个请求的窗口。
func (h *Histogram) InjectEdges(b Bounds) {
	if !b.bounded || h.Len() >= abs(b.lowerRelative) {
		return
	}
	h.ensure(b.upper)
	h.ensure(b.other())
}

// FillGaps 为相邻日期之间缺失的每一天插入 0，使序列在最早和最晚日期之间连续。
func (h *Histogram) FillGaps() {
	if len(h.buckets) < 2 {
		return
	}

	filled := make([]Bucket, 0, len(h.buckets))
	filled = append(filled, h.buckets[0])
	for i := 1; i < len(h.buckets); i++ {
		prev, cur := h.buckets[i-1].Day, h.buckets[i]
		for d := prev.AddDate(0, 0, 1); d.Before(cur.Day); d = d.AddDate(0, 0, 1) {
			filled = append(filled, Bucket{Day: d})
		}
		filled = append(filled, cur)
	}
	h.buckets = filled
}

// String 按日期升序输出以空格分隔的提交数，没有日期标签和结尾分隔符。
func (h *Histogram) String() string {
	var b strings.Builder
	for i, bucket := range h.buckets {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(bucket.Count))
	}
	return b.String()
}
