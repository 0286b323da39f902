package reviews

import (
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
)

func MapDbReviewToApiReview(reviewDb mongodb.ReviewDb) Review {
	return Review{
		Id:               reviewDb.Id,
		CafeId:           reviewDb.CafeId,
		UserId:           reviewDb.UserId,
		User:             reviewDb.User,
		Rating:           reviewDb.Rating,
		Text:             reviewDb.Text,
		AttributeRatings: reviewDb.AttributeRatings,
		Date:             reviewDb.Date,
		CreatedAt:        reviewDb.CreatedAt,
		UpdatedAt:        reviewDb.UpdatedAt,
	}
}

func mapDbReviewsToAggregationInput(reviewsDb []mongodb.ReviewDb) []recommend.Review {
	reviews := make([]recommend.Review, len(reviewsDb))
	for i, reviewDb := range reviewsDb {
		reviews[i] = recommend.Review{
			Rating:           reviewDb.Rating,
			Text:             reviewDb.Text,
			Date:             reviewDb.Date,
			AttributeRatings: reviewDb.AttributeRatings,
		}
	}
	return reviews
}
