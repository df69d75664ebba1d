// Package registering cuida do cadastro e da consulta de usuários
package registering

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/vfg2006/salesflow-api/infrastructure/repository"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	maxUsernameLength = 64
	minPasswordLength = 6
	// bcrypt ignora tudo além de 72 bytes
	maxPasswordBytes = 72
)

type Registerer interface {
	CreateUser(ctx context.Context, input domain.InsertUser) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cost     int

	// serializa verificação de unicidade e inserção
	createMutex sync.Mutex
}

func NewService(userRepo repository.UserRepository) Registerer {
	return &Service{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
	}
}

func (s *Service) CreateUser(ctx context.Context, input domain.InsertUser) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := validate(input); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrInternalServer, err.Error())
	}

	s.createMutex.Lock()
	defer s.createMutex.Unlock()

	existing, err := s.userRepo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao verificar username")
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewRegisterError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already taken")
	}

	user, err := s.userRepo.CreateUser(ctx, domain.InsertUser{
		Username: input.Username,
		Password: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, NewRegisterError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already taken")
		}
		log.ForContext(ctx).WithError(err).Error("Erro ao criar usuário")
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Usuário criado")
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithField("user_id", id).WithError(err).Error("Erro ao buscar usuário")
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if user == nil {
		return nil, &RegisterError{Err: ErrUserNotFound, Code: apiErrors.ErrUserNotFound, UserID: id, Details: "User not found"}
	}

	return user, nil
}

func validate(input domain.InsertUser) error {
	switch {
	case input.Username == "" || input.Password == "":
		return NewRegisterError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	case utf8.RuneCountInString(input.Username) > maxUsernameLength:
		return NewRegisterError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "username must be at most 64 characters")
	case len(input.Password) < minPasswordLength:
		return NewRegisterError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "password must be at least 6 characters")
	case len(input.Password) > maxPasswordBytes:
		return NewRegisterError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "password must be at most 72 bytes")
	}
	return nil
}
