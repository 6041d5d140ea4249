//go:build unit || e2e

package builder

import (
	"schnittwerk-api/internal/domain/user"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email            string
	PasswordHash     string
	Role             string
	Name             string
	Phone            *string
	MarketingConsent bool
	IsActive         bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		Name:         "Test Customer",
		IsActive:     true,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	name, err := user.NewDisplayName(u.Name)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, name, u.Phone, u.MarketingConsent), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:               uuid.New(),
		Email:            u.Email,
		Role:             u.Role,
		Name:             u.Name,
		MarketingConsent: u.MarketingConsent,
		IsActive:         u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithMarketingConsent() *UserBuilder {
	u.MarketingConsent = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
