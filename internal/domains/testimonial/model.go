package testimonial

import "math"

// Testimonial is a customer review shown on the public site.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"` // 1-5
	Text     string `json:"text"`
	Service  string `json:"service"`
	Category string `json:"category"`
	Location string `json:"location"`
	Date     string `json:"date"` // YYYY-MM-DD
	Verified bool   `json:"verified"`
}

// Stats are derived from the list, never stored independently of it.
// Recomputed inside every mutation so no stale aggregate is observable
// between a write and the next read.
type Stats struct {
	TotalReviews  int         `json:"totalReviews"`
	AverageRating float64     `json:"averageRating"` // rounded to 1 decimal
	Distribution  map[int]int `json:"distribution"`  // rating → count
}

// ComputeStats derives the aggregate from the current list.
func ComputeStats(list []Testimonial) Stats {
	stats := Stats{
		TotalReviews: len(list),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	if len(list) == 0 {
		return stats
	}

	sum := 0
	for _, t := range list {
		sum += t.Rating
		if t.Rating >= 1 && t.Rating <= 5 {
			stats.Distribution[t.Rating]++
		}
	}

	avg := float64(sum) / float64(len(list))
	stats.AverageRating = math.Round(avg*10) / 10

	return stats
}
