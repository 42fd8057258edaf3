package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mylibrary-backend/internal/domains/user/model"
	"mylibrary-backend/internal/domains/user/repository"
	"mylibrary-backend/pkg/jwt"
)

const bcryptCost = 12

type userService struct {
	repo repository.RepositoryInterface
	jwt  *jwt.Manager
}

func NewUserService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

// Register creates a regular account. Staff accounts are provisioned
// out of band, never through the public endpoint.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
	})
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenPairResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Unknown username and wrong password are indistinguishable.
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPairResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	// Reload the user so staff changes take effect on the next refresh.
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	return s.issueTokens(u)
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) issueTokens(u *model.User) (*model.TokenPairResponse, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.IsStaff)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &model.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
