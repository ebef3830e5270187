package dto

import (
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
)

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Skills    []string        `json:"skills"`
	Location  string          `json:"location,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	skills := []string(u.Skills)
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Skills:    skills,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
