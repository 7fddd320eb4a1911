package dto

import (
	"time"

	"github.com/hrcore/hr-admin-api/internal/models"
)

// UserDTO represents a user in API responses. Role and Status are fixed
// presentation values until role management lands.
type UserDTO struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Birthday  *time.Time `json:"birthday"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Birthday:  user.Birthday,
		Role:      "User",
		Status:    "Active",
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO          `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}
