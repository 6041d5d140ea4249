package commands

import (
	"context"

	"schnittwerk-api/internal/domain/user"
	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/pkg/errs"
	"schnittwerk-api/internal/pkg/jwt"
	"schnittwerk-api/internal/pkg/password"
	"schnittwerk-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterParams struct {
	Email            string
	Password         string
	Name             string
	Phone            *string
	MarketingConsent bool
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*TokenPair, *queries.AuthorizedUserView, error)
	Login(ctx context.Context, email, plainPassword string) (*TokenPair, *queries.AuthorizedUserView, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	users UserRepository
	jwt   *jwt.Service
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*TokenPair, *queries.AuthorizedUserView, error) {
	creds, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, nil, err
	}
	name, err := user.NewDisplayName(params.Name)
	if err != nil {
		return nil, nil, err
	}

	hash, err := password.HashPassword(creds.Password.Value())
	if err != nil {
		return nil, nil, err
	}

	newUser := user.NewUser(creds.Email, hash, user.RoleCustomer, name, params.Phone, params.MarketingConsent)
	if err := a.users.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	tokens, err := a.issueTokens(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, nil, err
	}

	view := &queries.AuthorizedUserView{
		ID:               newUser.ID(),
		Email:            newUser.Email().Value(),
		Role:             newUser.Role().String(),
		Name:             newUser.Name().Value(),
		MarketingConsent: newUser.MarketingConsent(),
		IsActive:         newUser.IsActive(),
	}
	return tokens, view, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*TokenPair, *queries.AuthorizedUserView, error) {
	snap, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !snap.IsActive {
		return nil, nil, ErrUserInactive
	}
	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, nil, ErrTokenGeneration
	}
	tokens, err := a.issueTokens(snap.ID, role)
	if err != nil {
		return nil, nil, err
	}

	// A stale last_login must not fail an otherwise valid login.
	_ = a.users.UpdateLastLogin(ctx, snap.ID)

	return tokens, authorizedView(snap), nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	snap, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}
	return a.issueTokens(snap.ID, role)
}

func (a *authCommandsImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	snap, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}
	return authorizedView(snap), nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := a.jwt.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func authorizedView(snap *UserSnapshot) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:               snap.ID,
		Email:            snap.Email,
		Role:             snap.Role,
		Name:             snap.Name,
		MarketingConsent: snap.MarketingConsent,
		IsActive:         snap.IsActive,
	}
}
