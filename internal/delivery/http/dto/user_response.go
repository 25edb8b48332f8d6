package dto

import (
	"time"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	AvatarURL  string    `json:"avatar_url"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Bio        string    `json:"bio"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       string(u.Role),
		AvatarURL:  u.AvatarURL,
		Phone:      u.Phone,
		Address:    u.Address,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// FollowerResponse is the public view of a candidate following a company.
type FollowerResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
}

func NewFollowerResponses(users []user.User) []FollowerResponse {
	out := make([]FollowerResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FollowerResponse{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			AvatarURL: u.AvatarURL,
		})
	}
	return out
}

type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
