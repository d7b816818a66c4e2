package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
}

func TestComputeStatsRounding(t *testing.T) {
	list := []Testimonial{
		{ID: "1", Rating: 5},
		{ID: "2", Rating: 4},
		{ID: "3", Rating: 4},
	}

	stats := ComputeStats(list)
	assert.Equal(t, 3, stats.TotalReviews)
	// 13/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, 2, stats.Distribution[4])
	assert.Equal(t, 1, stats.Distribution[5])
	assert.Equal(t, 0, stats.Distribution[1])
}
