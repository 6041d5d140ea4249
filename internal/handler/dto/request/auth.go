package request

import (
	"strings"

	"schnittwerk-api/internal/usecase/commands"
)

type RegisterRequest struct {
	Email            string  `json:"email" binding:"required"`
	Password         string  `json:"password" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Phone            *string `json:"phone,omitempty"`
	MarketingConsent bool    `json:"marketing_consent"`
}

func (r RegisterRequest) ToParams() commands.RegisterParams {
	var phone *string
	if r.Phone != nil {
		trimmed := strings.TrimSpace(*r.Phone)
		if trimmed != "" {
			phone = &trimmed
		}
	}
	return commands.RegisterParams{
		Email:            strings.TrimSpace(r.Email),
		Password:         r.Password,
		Name:             r.Name,
		Phone:            phone,
		MarketingConsent: r.MarketingConsent,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
