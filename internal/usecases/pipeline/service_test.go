package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesflow-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func testDeals() []domain.Deal {
	return []domain.Deal{
		{ID: "1", Name: "Acme Corp", Value: 50000, RiskScore: 85},
		{ID: "2", Name: "TechStart", Value: 35000, RiskScore: 72},
		{ID: "3", Name: "Global Solutions", Value: 75000, RiskScore: 45},
		{ID: "4", Name: "Limite alto", Value: 1000, RiskScore: 80},
		{ID: "5", Name: "Limite médio", Value: 2000, RiskScore: 60},
	}
}

func TestService_ListDeals(t *testing.T) {
	tests := []struct {
		name    string
		filter  DealFilter
		wantIDs []string
	}{
		{name: "sem filtro devolve tudo na ordem", filter: DealFilter{}, wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "risco alto inclui o limite 80", filter: DealFilter{RiskLevel: "high"}, wantIDs: []string{"1", "4"}},
		{name: "risco médio inclui o limite 60", filter: DealFilter{RiskLevel: "medium"}, wantIDs: []string{"2", "5"}},
		{name: "risco baixo", filter: DealFilter{RiskLevel: "low"}, wantIDs: []string{"3"}},
		{name: "filtro ignora caixa e espaços", filter: DealFilter{RiskLevel: " HIGH "}, wantIDs: []string{"1", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDealRepository(ctrl)
			repo.EXPECT().GetDeals(gomock.Any()).Return(testDeals(), nil)

			deals, err := NewService(repo).ListDeals(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(deals))
			for _, d := range deals {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_ListDeals_InvalidRiskLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDealRepository(ctrl)

	_, err := NewService(repo).ListDeals(context.Background(), DealFilter{RiskLevel: "critical"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRiskLevel)

	var qErr *QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Equal(t, apiErrors.ErrInvalidFormat, qErr.Code)
}

func TestService_ListDeals_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDealRepository(ctrl)
	repo.EXPECT().GetDeals(gomock.Any()).Return(nil, nil).Times(2)

	svc := NewService(repo)

	deals, err := svc.ListDeals(context.Background(), DealFilter{})
	require.NoError(t, err)
	assert.NotNil(t, deals)
	assert.Empty(t, deals)

	deals, err = svc.ListDeals(context.Background(), DealFilter{RiskLevel: "high"})
	require.NoError(t, err)
	assert.NotNil(t, deals)
}

func TestService_ListDeals_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDealRepository(ctrl)
	repo.EXPECT().GetDeals(gomock.Any()).Return(nil, errors.New("storage indisponível"))

	_, err := NewService(repo).ListDeals(context.Background(), DealFilter{})

	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_GetDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDealRepository(ctrl)
	svc := NewService(repo)

	t.Run("encontrado", func(t *testing.T) {
		repo.EXPECT().GetDeal(gomock.Any(), "1").Return(&domain.Deal{ID: "1", RiskScore: 85}, nil)

		deal, err := svc.GetDeal(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, 85, deal.RiskScore)
	})

	t.Run("ausente vira ErrDealNotFound", func(t *testing.T) {
		repo.EXPECT().GetDeal(gomock.Any(), "999").Return(nil, nil)

		deal, err := svc.GetDeal(context.Background(), "999")
		assert.Nil(t, deal)
		assert.ErrorIs(t, err, ErrDealNotFound)

		var qErr *QueryError
		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, apiErrors.ErrDealNotFound, qErr.Code)
		assert.Equal(t, "999", qErr.DealID)
	})

	t.Run("falha do repositório", func(t *testing.T) {
		repo.EXPECT().GetDeal(gomock.Any(), "1").Return(nil, errors.New("timeout"))

		_, err := svc.GetDeal(context.Background(), "1")
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.NotErrorIs(t, err, ErrDealNotFound)
	})
}

func TestService_GetRiskSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDealRepository(ctrl)
	repo.EXPECT().GetDeals(gomock.Any()).Return(testDeals(), nil)

	summary, err := NewService(repo).GetRiskSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RiskBucket{Count: 2, TotalValue: 51000}, summary.High)
	assert.Equal(t, domain.RiskBucket{Count: 2, TotalValue: 37000}, summary.Medium)
	assert.Equal(t, domain.RiskBucket{Count: 1, TotalValue: 75000}, summary.Low)
}
