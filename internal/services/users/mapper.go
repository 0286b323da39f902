package users

import (
	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/mongodb"
)

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:          userDb.Id,
		Username:    userDb.Username,
		Name:        userDb.Name,
		Email:       userDb.Email,
		Role:        userDb.Role,
		IsActive:    userDb.IsActive,
		AvatarURL:   userDb.AvatarURL,
		LastLoginAt: userDb.LastLoginAt,
		CreatedAt:   userDb.CreatedAt,
		UpdatedAt:   userDb.UpdatedAt,
	}
}

func MapDbUserToApiLoginResponse(userDb mongodb.UserDb, token string) auth.LoginResponse {
	return auth.LoginResponse{
		Id:          userDb.Id,
		Username:    userDb.Username,
		Name:        userDb.Name,
		Email:       userDb.Email,
		Role:        userDb.Role,
		AvatarURL:   userDb.AvatarURL,
		LastLoginAt: userDb.LastLoginAt,
		AccessToken: token,
	}
}
