package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.UserProgression, error) {
	req.Country = strings.TrimSpace(req.Country)
	req.City = strings.TrimSpace(req.City)
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(err, placeSentinels)
	}
	id, err := us.repo.Create(ctx, &entity.UserProgression{
		Name:    req.Name,
		Country: req.Country,
		City:    req.City,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return us.GetByID(ctx, id)
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserProgression, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
