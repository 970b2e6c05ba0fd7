package dto

import (
	"jobmatch/internal/domain/user"
	ucauth "jobmatch/internal/usecase/auth"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	User         *user.User `json:"user,omitempty"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

func NewAuthResponse(s ucauth.Session, withUser bool) AuthResponse {
	out := AuthResponse{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
	if withUser {
		u := s.User
		out.User = &u
	}
	return out
}
