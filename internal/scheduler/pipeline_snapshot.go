// Package scheduler executa os jobs periódicos da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/internal/config"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	"github.com/vfg2006/salesflow-api/internal/usecases/teamadoption"
)

// SnapshotPublisher recebe os indicadores calculados a cada execução
type SnapshotPublisher interface {
	SetRiskBand(risk string, count int, value int64)
	SetTeamAdoption(avg float64)
	MarkSnapshot(at time.Time, duration time.Duration)
}

// PipelineSnapshotService recalcula periodicamente o resumo de risco e a adoção
// média do time e publica os valores como gauges
type PipelineSnapshotService struct {
	scheduler    *gocron.Scheduler
	config       config.Snapshot
	pipeline     pipeline.Service
	team         teamadoption.Service
	publisher    SnapshotPublisher
	now          func() time.Time
	running      bool
	runningMutex sync.Mutex
}

func NewPipelineSnapshotService(
	cfg config.Snapshot,
	pipelineService pipeline.Service,
	teamService teamadoption.Service,
	publisher SnapshotPublisher,
) *PipelineSnapshotService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do snapshot do pipeline carregada")

	return &PipelineSnapshotService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		pipeline:  pipelineService,
		team:      teamService,
		publisher: publisher,
		now:       time.Now,
	}
}

// Start agenda o job e dispara um primeiro snapshot em background
func (s *PipelineSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot do pipeline desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do pipeline: %w", err)
	}

	s.scheduler.StartAsync()
	go s.Run(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do snapshot do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// Run calcula e publica um snapshot. Execuções sobrepostas são ignoradas.
func (s *PipelineSnapshotService) Run(ctx context.Context) {
	s.runningMutex.Lock()
	if s.running {
		s.runningMutex.Unlock()
		logrus.Debug("Snapshot do pipeline já em andamento, ignorando")
		return
	}
	s.running = true
	s.runningMutex.Unlock()

	defer func() {
		s.runningMutex.Lock()
		s.running = false
		s.runningMutex.Unlock()
	}()

	startTime := s.now()

	summary, err := s.pipeline.GetRiskSummary(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular resumo de risco do snapshot")
		return
	}

	members, err := s.team.GetTeamMembers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar time para o snapshot")
		return
	}

	s.publisher.SetRiskBand(string(domain.RiskLevelHigh), summary.High.Count, summary.High.TotalValue)
	s.publisher.SetRiskBand(string(domain.RiskLevelMedium), summary.Medium.Count, summary.Medium.TotalValue)
	s.publisher.SetRiskBand(string(domain.RiskLevelLow), summary.Low.Count, summary.Low.TotalValue)
	s.publisher.SetTeamAdoption(averageAdoption(members))

	finishedAt := s.now()
	s.publisher.MarkSnapshot(finishedAt, finishedAt.Sub(startTime))

	logrus.WithFields(logrus.Fields{
		"high":   summary.High.Count,
		"medium": summary.Medium.Count,
		"low":    summary.Low.Count,
	}).Debug("Snapshot do pipeline publicado")
}

func averageAdoption(members []domain.TeamMember) float64 {
	if len(members) == 0 {
		return 0
	}

	var total float64
	for _, m := range members {
		total += m.Adoption
	}
	return total / float64(len(members))
}
