package freq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCount_SortsAscending(t *testing.T) {
	h := Count([]time.Time{
		date(2024, 1, 3),
		date(2024, 1, 1),
		time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC),
		date(2023, 12, 31),
	})

	assert.Equal(t, []Bucket{
		{Day: date(2023, 12, 31), Count: 1},
		{Day: date(2024, 1, 1), Count: 1},
		{Day: date(2024, 1, 3), Count: 2},
	}, h.Buckets())
}

func TestHistogram_EnsureKeepsExistingCounts(t *testing.T) {
	h := Count([]time.Time{date(2024, 1, 5), date(2024, 1, 5)})

	h.ensure(date(2024, 1, 5))
	h.ensure(date(2024, 1, 1))
	h.ensure(date(2024, 1, 9))
	h.ensure(date(2024, 1, 1))

	assert.Equal(t, "0 2 0", h.String())
	assert.Equal(t, 3, h.Len())
}

func TestHistogram_FillGaps(t *testing.T) {
	tests := []struct {
		name string
		days []time.Time
		want string
	}{
		{"empty", nil, ""},
		{"single", []time.Time{date(2024, 1, 1)}, "1"},
		{"adjacent", []time.Time{date(2024, 1, 1), date(2024, 1, 2)}, "1 1"},
		{"across month end", []time.Time{date(2024, 1, 30), date(2024, 2, 2)}, "1 0 0 1"},
		{"across leap day", []time.Time{date(2024, 2, 28), date(2024, 3, 1)}, "1 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Count(tt.days)
			h.FillGaps()
			assert.Equal(t, tt.want, h.String())
		})
	}
}

func TestHistogram_InjectEdgesUnbounded(t *testing.T) {
	h := Count(nil)
	h.InjectEdges(Unbounded(date(2024, 1, 10)))
	assert.Equal(t, 0, h.Len())
}

func TestHistogram_BucketsReturnsCopy(t *testing.T) {
	h := Count([]time.Time{date(2024, 1, 1)})
	buckets := h.Buckets()
	buckets[0].Count = 99

	assert.Equal(t, "1", h.String())
}
