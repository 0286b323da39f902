package recommend

import "math"

// Aggregate recomputes the two derived cafe fields from its current review
// set: the review count and the average rating rounded to one decimal place.
// An empty review set yields (0, 0) so the result is always renderable.
// The result depends only on the multiset of ratings, not their order.
func Aggregate(reviews []Review) (stars float64, reviewCount int) {
	reviewCount = len(reviews)
	if reviewCount == 0 {
		return 0, 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	mean := float64(total) / float64(reviewCount)
	stars = math.Round(mean*10) / 10

	return stars, reviewCount
}
