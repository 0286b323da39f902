package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type UserDb struct {
	Id           string     `json:"id" bson:"_id"`
	Username     string     `json:"username" bson:"username"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"passwordHash" bson:"passwordHash"`
	Role         string     `json:"role" bson:"role"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	AvatarURL    *string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return UserDb{}, err
	}

	return user, nil
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

// GetUserByUsernameOrEmail resolves the login identifier; either field may
// be empty, the first non-empty one wins.
func (db *DB) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	filter := bson.M{"email": email}
	if username != "" {
		filter = bson.M{"username": username}
	}

	var userDb UserDb
	if err := coll.FindOne(ctx, filter).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetAllUsers(ctx context.Context) ([]UserDb, error) {
	coll := db.Collection(UsersCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return []UserDb{}, err
	}
	defer cursor.Close(ctx)

	var allUsers []UserDb
	if err := cursor.All(ctx, &allUsers); err != nil {
		return []UserDb{}, err
	}
	return allUsers, nil
}

func (db *DB) UpdateUserRole(ctx context.Context, userId, role string) error {
	return db.setUserFields(ctx, userId, bson.M{"role": role})
}

func (db *DB) SetUserActive(ctx context.Context, userId string, active bool) error {
	return db.setUserFields(ctx, userId, bson.M{"isActive": active})
}

func (db *DB) SetUserLastLogin(ctx context.Context, userId string, at time.Time) error {
	return db.setUserFields(ctx, userId, bson.M{"lastLoginAt": at})
}

func (db *DB) setUserFields(ctx context.Context, userId string, fields bson.M) error {
	coll := db.Collection(UsersCollection)

	fields["updatedAt"] = time.Now()

	res, err := coll.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
