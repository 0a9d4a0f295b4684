package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/repositories"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]db_models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	AddPreference(ctx context.Context, userID uuid.UUID, req request_models.CreatePreferenceRequest) (*db_models.UserPreference, error)
	ListPreferences(ctx context.Context, userID uuid.UUID) ([]db_models.UserPreference, error)
	DeletePreference(ctx context.Context, id uuid.UUID) error
}

type UserService struct {
	userRepo       repositories.UserRepository
	preferenceRepo repositories.PreferenceRepository
}

func NewUserService(userRepo repositories.UserRepository, preferenceRepo repositories.PreferenceRepository) UserServiceInterface {
	return &UserService{
		userRepo:       userRepo,
		preferenceRepo: preferenceRepo,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error) {
	user := &db_models.User{
		Email:               strings.TrimSpace(req.Email),
		FullName:            req.FullName,
		Language:            req.Language,
		TravelStyle:         req.TravelStyle,
		DietaryRestrictions: req.DietaryRestrictions,
		AccessibilityNeeds:  req.AccessibilityNeeds,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateStorageError(err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]db_models.User, error) {
	users, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if user == nil {
		return nil, notFound("user")
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, translateStorageError(err)
	}
	if user == nil {
		return nil, notFound("user")
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := requireUser(ctx, s.userRepo, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Language != nil {
		user.Language = *req.Language
	}
	if req.TravelStyle != nil {
		user.TravelStyle = *req.TravelStyle
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = req.DietaryRestrictions
	}
	if req.AccessibilityNeeds != nil {
		user.AccessibilityNeeds = req.AccessibilityNeeds
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, translateStorageError(err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return deleteError("user", err)
	}
	return nil
}

func (s *UserService) AddPreference(ctx context.Context, userID uuid.UUID, req request_models.CreatePreferenceRequest) (*db_models.UserPreference, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	pref := &db_models.UserPreference{
		UserID:   userID,
		Category: req.Category,
		Weight:   req.Weight,
	}
	if err := s.preferenceRepo.Create(ctx, pref); err != nil {
		return nil, translateStorageError(err)
	}
	return pref, nil
}

func (s *UserService) ListPreferences(ctx context.Context, userID uuid.UUID) ([]db_models.UserPreference, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	prefs, err := s.preferenceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return prefs, nil
}

func (s *UserService) DeletePreference(ctx context.Context, id uuid.UUID) error {
	if err := s.preferenceRepo.Delete(ctx, id); err != nil {
		return deleteError("preference", err)
	}
	return nil
}
