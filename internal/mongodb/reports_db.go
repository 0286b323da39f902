package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

// ReportDb is a flagged review awaiting moderation. The report carries a
// denormalized copy of the review content so the moderation list renders
// without extra lookups.
type ReportDb struct {
	Id            string    `json:"id" bson:"_id"`
	ReviewId      string    `json:"reviewId" bson:"reviewId"`
	CafeId        string    `json:"cafeId" bson:"cafeId"`
	CafeName      string    `json:"cafeName" bson:"cafeName"`
	ReviewContent string    `json:"reviewContent" bson:"reviewContent"`
	ReportedUser  string    `json:"reportedUser" bson:"reportedUser"`
	Reason        string    `json:"reason" bson:"reason"`
	ReporterId    string    `json:"reporterId" bson:"reporterId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddReport(ctx context.Context, report ReportDb) (ReportDb, error) {
	coll := db.Collection(ReportsCollection)

	report.Id = primitive.NewObjectID().Hex()
	report.CreatedAt = time.Now()

	if _, err := coll.InsertOne(ctx, report); err != nil {
		return ReportDb{}, err
	}

	return report, nil
}

func (db *DB) GetReportById(ctx context.Context, reportId string) (ReportDb, error) {
	coll := db.Collection(ReportsCollection)

	var report ReportDb
	if err := coll.FindOne(ctx, bson.M{"_id": reportId}).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ReportDb{}, ErrRecordNotFound
		}
		return ReportDb{}, err
	}

	return report, nil
}

func (db *DB) GetAllReports(ctx context.Context) ([]ReportDb, error) {
	coll := db.Collection(ReportsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return []ReportDb{}, err
	}
	defer cursor.Close(ctx)

	var reports []ReportDb
	if err := cursor.All(ctx, &reports); err != nil {
		return []ReportDb{}, err
	}

	return reports, nil
}

func (db *DB) DeleteReport(ctx context.Context, reportId string) (int64, error) {
	coll := db.Collection(ReportsCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": reportId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) DeleteReportsByCafeId(ctx context.Context, cafeId string) (int64, error) {
	coll := db.Collection(ReportsCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"cafeId": cafeId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) DeleteReportsByReviewId(ctx context.Context, reviewId string) (int64, error) {
	coll := db.Collection(ReportsCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"reviewId": reviewId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
