package handler

import (
	"github.com/eventservice/user-directory/internal/core/domain"
)

func toDomainUser(req userRequest) *domain.User {
	return &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
