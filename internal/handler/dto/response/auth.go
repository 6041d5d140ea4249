package response

import (
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Name             string    `json:"name"`
	MarketingConsent bool      `json:"marketing_consent"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return resp
}
