package dto

import "portfolio-be/internal/entity"

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        *entity.Session `json:"user"`
}

type SessionResponse struct {
	IsAuthenticated bool            `json:"is_authenticated"`
	User            *entity.Session `json:"user"`
}

type OAuthLoginResponse struct {
	URL string `json:"url"`
}
