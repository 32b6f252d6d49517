package handler

import (
	"github.com/academia/users-service/internal/core/domain"
)

func toDomainUser(req userRequest) *domain.User {
	return &domain.User{
		Name:           req.Name,
		FirstLastname:  req.FirstLastname,
		SecondLastname: req.SecondLastname,
		DateBirth:      req.DateBirth,
		CI:             req.CI,
		Role:           req.Role,
		HireDate:       req.HireDate,
		MonthlySalary:  req.MonthlySalary,
		Specialization: req.Specialization,
		Email:          req.Email,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Name:               u.Name,
		FirstLastname:      u.FirstLastname,
		SecondLastname:     u.SecondLastname,
		DateBirth:          u.DateBirth,
		CI:                 u.CI,
		Role:               u.Role,
		HireDate:           u.HireDate,
		MonthlySalary:      u.MonthlySalary,
		Specialization:     u.Specialization,
		Email:              u.Email,
		MustChangePassword: u.MustChangePassword,
		IsActive:           u.IsActive,
		CreatedAt:          u.CreatedAt,
		LastModification:   u.LastModification,
	}
}

func toListResponse(users []domain.User) listUsersResponse {
	data := make([]userResponse, 0, len(users))
	for i := range users {
		data = append(data, toUserResponse(&users[i]))
	}
	return listUsersResponse{Data: data}
}
