package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ----- Types for the database -----

type FavoriteDb struct {
	Id        string    `json:"id" bson:"_id"`
	UserId    string    `json:"userId" bson:"userId"`
	CafeId    string    `json:"cafeId" bson:"cafeId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddFavorite(ctx context.Context, userId, cafeId string) (FavoriteDb, error) {
	coll := db.Collection(FavoritesCollection)

	favorite := FavoriteDb{
		Id:        primitive.NewObjectID().Hex(),
		UserId:    userId,
		CafeId:    cafeId,
		CreatedAt: time.Now(),
	}

	if _, err := coll.InsertOne(ctx, favorite); err != nil {
		return FavoriteDb{}, err
	}

	return favorite, nil
}

func (db *DB) GetFavoritesByUserId(ctx context.Context, userId string) ([]FavoriteDb, error) {
	coll := db.Collection(FavoritesCollection)

	cursor, err := coll.Find(ctx, bson.M{"userId": userId})
	if err != nil {
		return []FavoriteDb{}, err
	}
	defer cursor.Close(ctx)

	var favorites []FavoriteDb
	if err := cursor.All(ctx, &favorites); err != nil {
		return []FavoriteDb{}, err
	}

	return favorites, nil
}

func (db *DB) DeleteFavorite(ctx context.Context, userId, cafeId string) (int64, error) {
	coll := db.Collection(FavoritesCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"userId": userId, "cafeId": cafeId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (db *DB) DeleteFavoritesByCafeId(ctx context.Context, cafeId string) (int64, error) {
	coll := db.Collection(FavoritesCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"cafeId": cafeId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
