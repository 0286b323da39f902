package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/recommend"
	"github.com/lealre/cafes-backend/internal/services/cafes"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddReview stores a new review, recomputes the cafe rating stats and
// notifies the cafe owner. A user can hold at most one review per cafe;
// the unique index on (userId, cafeId) enforces it.
func AddReview(db *mongodb.DB, ctx context.Context, cafeId string, req AddReviewRequest, userId, username string) (Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if strings.TrimSpace(req.Text) == "" {
		return Review{}, ErrMissingReviewText
	}

	cafeDb, err := db.GetCafeById(ctx, cafeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Review{}, cafes.ErrCafeNotFound
		}
		return Review{}, err
	}

	if _, err := db.GetReviewByUserIdAndCafeId(ctx, userId, cafeId); err == nil {
		return Review{}, ErrReviewAlreadyExists
	} else if err != mongodb.ErrRecordNotFound {
		return Review{}, err
	}

	reviewDb, err := db.AddReview(ctx, mongodb.ReviewDb{
		CafeId:           cafeId,
		UserId:           userId,
		User:             username,
		Rating:           req.Rating,
		Text:             req.Text,
		AttributeRatings: req.AttributeRatings,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Review{}, ErrReviewAlreadyExists
		}
		return Review{}, err
	}

	if err := RecomputeCafeRatingStats(db, ctx, cafeId); err != nil {
		return Review{}, err
	}

	// Best effort: the review stays valid even if the notification insert
	// fails.
	if cafeDb.OwnerId != "" && cafeDb.OwnerId != userId {
		db.AddNotification(ctx, mongodb.NotificationDb{
			UserId:  cafeDb.OwnerId,
			Type:    "review",
			Content: fmt.Sprintf("%s left a %d-star review on %s", username, req.Rating, cafeDb.Name),
		})
	}

	return MapDbReviewToApiReview(reviewDb), nil
}

func GetReviewsByCafeId(db *mongodb.DB, ctx context.Context, cafeId string) ([]Review, error) {
	reviewsDb, err := db.GetReviewsByCafeId(ctx, cafeId)
	if err != nil {
		return nil, err
	}

	reviews := make([]Review, len(reviewsDb))
	for i, reviewDb := range reviewsDb {
		reviews[i] = MapDbReviewToApiReview(reviewDb)
	}

	return reviews, nil
}

// UpdateReview replaces the rating, text and attribute ratings of the
// caller's own review and recomputes the cafe stats.
func UpdateReview(db *mongodb.DB, ctx context.Context, reviewId string, req UpdateReviewRequest, userId string) (Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if strings.TrimSpace(req.Text) == "" {
		return Review{}, ErrMissingReviewText
	}

	reviewDb, err := db.GetReviewById(ctx, reviewId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}
	if reviewDb.UserId != userId {
		return Review{}, ErrNotReviewAuthor
	}

	reviewDb.Rating = req.Rating
	reviewDb.Text = req.Text
	reviewDb.AttributeRatings = req.AttributeRatings

	if err := db.UpdateReview(ctx, reviewDb, userId); err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}

	if err := RecomputeCafeRatingStats(db, ctx, reviewDb.CafeId); err != nil {
		return Review{}, err
	}

	return MapDbReviewToApiReview(reviewDb), nil
}

// DeleteReview removes a review along with any open reports against it,
// then recomputes the cafe stats. Only the author or a moderator may
// delete it.
func DeleteReview(db *mongodb.DB, ctx context.Context, reviewId, userId string, canModerate bool) error {
	reviewDb, err := db.GetReviewById(ctx, reviewId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrReviewNotFound
		}
		return err
	}
	if reviewDb.UserId != userId && !canModerate {
		return ErrNotReviewAuthor
	}

	if _, err := db.DeleteReview(ctx, reviewId); err != nil {
		return err
	}
	if _, err := db.DeleteReportsByReviewId(ctx, reviewId); err != nil {
		return err
	}

	return RecomputeCafeRatingStats(db, ctx, reviewDb.CafeId)
}

// RecomputeCafeRatingStats rebuilds the cafe's stars and review_count from
// its current review set. The pair is always derived, never adjusted
// incrementally.
func RecomputeCafeRatingStats(db *mongodb.DB, ctx context.Context, cafeId string) error {
	reviewsDb, err := db.GetReviewsByCafeId(ctx, cafeId)
	if err != nil {
		return err
	}

	stars, reviewCount := recommend.Aggregate(mapDbReviewsToAggregationInput(reviewsDb))

	return db.UpdateCafeRatingStats(ctx, cafeId, stars, reviewCount)
}
