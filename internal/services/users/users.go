package users

import (
	"context"
	"strings"
	"time"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// Roles a user can hold. Owners manage their own listings; admins moderate
// reviews and manage roles.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// CreateUser validates the signup request, hashes the password and stores
// the new user with the default role.
func CreateUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (UserResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return UserResponse{}, ErrMissingRequiredInfo
	}
	if !IsValidUsername(req.Username) {
		return UserResponse{}, ErrInvalidUsername
	}
	if !IsValidEmail(req.Email) {
		return UserResponse{}, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return UserResponse{}, ErrPasswordTooShort
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		IsActive:     true,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return UserResponse{}, ErrUserAlreadyExists
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func GetUserDbByUsernameOrEmail(db *mongodb.DB, ctx context.Context, username, email string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.UserDb{}, auth.ErrInvalidCredentials
		}
		return mongodb.UserDb{}, err
	}

	return userDb, nil
}

// BuildLoginResponse records the login time and assembles the token payload.
func BuildLoginResponse(db *mongodb.DB, ctx context.Context, userDb mongodb.UserDb, token string) (auth.LoginResponse, error) {
	now := time.Now()
	if err := db.SetUserLastLogin(ctx, userDb.Id, now); err != nil {
		return auth.LoginResponse{}, err
	}
	userDb.LastLoginAt = &now

	return MapDbUserToApiLoginResponse(userDb, token), nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	allUsersDb, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	allUsers := make([]UserResponse, len(allUsersDb))
	for i, userDb := range allUsersDb {
		allUsers[i] = MapDbUserToApiUserResponse(userDb)
	}

	return allUsers, nil
}

func ChangeRole(db *mongodb.DB, ctx context.Context, userId, role string) error {
	if !IsValidRole(role) {
		return ErrInvalidRole
	}

	if err := db.UpdateUserRole(ctx, userId, role); err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func Deactivate(db *mongodb.DB, ctx context.Context, userId string) error {
	if err := db.SetUserActive(ctx, userId, false); err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
