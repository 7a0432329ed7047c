package dto

import "github.com/BruksfildServices01/salon-booking/internal/models"

type PublicUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func PublicUser(u *models.User) PublicUserDTO {
	return PublicUserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
