// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/vfg2006/salesflow-api/internal/domain"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// Consultas que miram um único recurso retornam (nil, nil) quando o ID não existe:
// ausência não é erro no nível do repositório.

type DealRepository interface {
	GetDeals(ctx context.Context) ([]domain.Deal, error)
	GetDeal(ctx context.Context, id string) (*domain.Deal, error)
}

type RepRepository interface {
	GetRep(ctx context.Context, id string) (*domain.Rep, error)
	GetRepStageActions(ctx context.Context, repID string) ([]domain.StageActions, error)
	GetRepCalls(ctx context.Context, repID string) ([]domain.Call, error)
}

type CallRepository interface {
	GetCalls(ctx context.Context) ([]domain.Call, error)
	GetCallDetail(ctx context.Context, id string) (*domain.CallDetail, error)
}

type TeamRepository interface {
	GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	GetTeamStageActions(ctx context.Context) ([]domain.StageActions, error)
	GetCoachingPriorities(ctx context.Context) ([]domain.CoachingPriority, error)
	GetAdoptionTrends(ctx context.Context) ([]domain.AdoptionTrend, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.InsertUser) (*domain.User, error)
}

// Storage reúne todas as operações expostas pela camada de dados
type Storage interface {
	DealRepository
	RepRepository
	CallRepository
	TeamRepository
	UserRepository
}
