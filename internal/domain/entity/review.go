package entity

import "math"

// ReviewDateLayout is the calendar date format of Review.Date
const ReviewDateLayout = "2006-01-02"

// Review is a patient's rating of a hospital
type Review struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	HospitalID  string `json:"hospital_id"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
}

// StarCount is one bar of the rating histogram
type StarCount struct {
	Stars   int
	Count   int
	Percent float64
}

// ReviewSummary is the rating overview shown above a hospital's reviews
type ReviewSummary struct {
	Count         int
	AverageRating float64
	Histogram     []StarCount // 5 stars first
}

// SummarizeReviews computes the average rating and the 5..1 histogram.
// With no reviews the average falls back to the hospital's own rating.
func SummarizeReviews(reviews []Review, fallbackRating float64) ReviewSummary {
	summary := ReviewSummary{
		Count:         len(reviews),
		AverageRating: fallbackRating,
		Histogram:     make([]StarCount, 0, 5),
	}

	total := 0
	counts := make(map[int]int, 5)
	for _, r := range reviews {
		total += r.Rating
		counts[r.Rating]++
	}
	if len(reviews) > 0 {
		summary.AverageRating = math.Round(float64(total)/float64(len(reviews))*10) / 10
	}

	for stars := 5; stars >= 1; stars-- {
		bar := StarCount{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			bar.Percent = float64(bar.Count) / float64(len(reviews)) * 100
		}
		summary.Histogram = append(summary.Histogram, bar)
	}

	return summary
}
