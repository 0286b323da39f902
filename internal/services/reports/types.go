package reports

import (
	"time"

	"github.com/lealre/cafes-backend/internal/mongodb"
)

type Report struct {
	Id            string    `json:"id"`
	ReviewId      string    `json:"reviewId"`
	CafeId        string    `json:"cafeId"`
	CafeName      string    `json:"cafeName"`
	ReviewContent string    `json:"reviewContent"`
	ReportedUser  string    `json:"reportedUser"`
	Reason        string    `json:"reason"`
	ReporterId    string    `json:"reporterId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FlagReviewRequest struct {
	Reason string `json:"reason"`
}

type AllReportsResponse struct {
	Reports []Report `json:"reports"`
}

func MapDbReportToApiReport(reportDb mongodb.ReportDb) Report {
	return Report{
		Id:            reportDb.Id,
		ReviewId:      reportDb.ReviewId,
		CafeId:        reportDb.CafeId,
		CafeName:      reportDb.CafeName,
		ReviewContent: reportDb.ReviewContent,
		ReportedUser:  reportDb.ReportedUser,
		Reason:        reportDb.Reason,
		ReporterId:    reportDb.ReporterId,
		CreatedAt:     reportDb.CreatedAt,
	}
}
