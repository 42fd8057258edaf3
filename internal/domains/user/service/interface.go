package service

import (
	"context"

	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenPairResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPairResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
}
