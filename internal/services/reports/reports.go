// Package reports implements review moderation. Flagging a review creates a
// "reported" document carrying a denormalized copy of the review, so the
// moderation queue renders without joining back to reviews. Admins either
// dismiss a report or resolve it by deleting the offending review.
package reports

import (
	"context"
	"strings"

	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/services/reviews"
)

// FlagReview files a report against a review. The snapshot of the review
// content is taken at flag time; later edits to the review do not change
// the report.
func FlagReview(db *mongodb.DB, ctx context.Context, reviewId, reason, reporterId string) (Report, error) {
	if strings.TrimSpace(reason) == "" {
		return Report{}, ErrMissingReason
	}

	reviewDb, err := db.GetReviewById(ctx, reviewId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Report{}, reviews.ErrReviewNotFound
		}
		return Report{}, err
	}

	cafeName := ""
	if cafeDb, err := db.GetCafeById(ctx, reviewDb.CafeId); err == nil {
		cafeName = cafeDb.Name
	}

	reportDb, err := db.AddReport(ctx, mongodb.ReportDb{
		ReviewId:      reviewId,
		CafeId:        reviewDb.CafeId,
		CafeName:      cafeName,
		ReviewContent: reviewDb.Text,
		ReportedUser:  reviewDb.User,
		Reason:        reason,
		ReporterId:    reporterId,
	})
	if err != nil {
		return Report{}, err
	}

	return MapDbReportToApiReport(reportDb), nil
}

func GetAllReports(db *mongodb.DB, ctx context.Context) ([]Report, error) {
	reportsDb, err := db.GetAllReports(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(reportsDb))
	for i, reportDb := range reportsDb {
		reports[i] = MapDbReportToApiReport(reportDb)
	}

	return reports, nil
}

// DismissReport drops the report and keeps the review.
func DismissReport(db *mongodb.DB, ctx context.Context, reportId string) error {
	deletedCount, err := db.DeleteReport(ctx, reportId)
	if err != nil {
		return err
	}
	if deletedCount == 0 {
		return ErrReportNotFound
	}

	return nil
}

// ResolveReport deletes the reported review, which also clears every other
// report against it and recomputes the cafe stats. The moderator context is
// implied: handlers gate this behind the admin role.
func ResolveReport(db *mongodb.DB, ctx context.Context, reportId, moderatorId string) error {
	reportDb, err := db.GetReportById(ctx, reportId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrReportNotFound
		}
		return err
	}

	err = reviews.DeleteReview(db, ctx, reportDb.ReviewId, moderatorId, true)
	if err != nil && err != reviews.ErrReviewNotFound {
		return err
	}

	// The review may already be gone; the report itself still has to go.
	if _, err := db.DeleteReport(ctx, reportId); err != nil {
		return err
	}

	return nil
}
