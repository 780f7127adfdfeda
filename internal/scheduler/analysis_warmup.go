package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/repository"
	"github.com/avmoura/sankhya-crm-api/internal/config"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/analyzing"
)

// AnalysisWarmupConfig representa a configuração do pré-aquecimento do cache
// de análise
type AnalysisWarmupConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	Enabled             bool
}

// AnalysisWarmupService recomputa, fora do horário comercial, a análise do
// período corrente para cada usuário ativo, deixando o cache quente para o
// primeiro acesso do dia.
type AnalysisWarmupService struct {
	scheduler          *gocron.Scheduler
	config             AnalysisWarmupConfig
	userRepo           repository.UserRepository
	analysisService    analyzing.Analyzer
	warmupRunning      bool
	warmupMutex        sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewAnalysisWarmupService cria o serviço de pré-aquecimento
func NewAnalysisWarmupService(
	userRepo repository.UserRepository,
	analysisService analyzing.Analyzer,
	appConfig *config.Config,
) *AnalysisWarmupService {
	warmupConfig := AnalysisWarmupConfig{
		CronSchedule:        appConfig.AnalysisWarmup.CronSchedule,
		LookbackDays:        appConfig.AnalysisWarmup.LookbackDays,
		RequestDelaySeconds: appConfig.AnalysisWarmup.RequestDelaySeconds,
		Enabled:             appConfig.AnalysisWarmup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         warmupConfig.CronSchedule,
		"lookback_days":         warmupConfig.LookbackDays,
		"request_delay_seconds": warmupConfig.RequestDelaySeconds,
		"enabled":               warmupConfig.Enabled,
	}).Info("Configuração do pré-aquecimento de análise carregada")

	return &AnalysisWarmupService{
		scheduler:       scheduler,
		config:          warmupConfig,
		userRepo:        userRepo,
		analysisService: analysisService,
		warmupRunning:   false,
	}
}

// Start inicia o agendador
func (s *AnalysisWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pré-aquecimento de análise desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pré-aquecimento de análise")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupAllUsers()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento de análise: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-aquecimento de análise")
		s.scheduler.Stop()
	}()

	return nil
}

// warmupAllUsers recomputa a análise da janela corrente para cada usuário
// ativo, em sequência, com uma pausa entre usuários para não sobrecarregar o
// Sankhya.
func (s *AnalysisWarmupService) warmupAllUsers() {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Pré-aquecimento de análise já em andamento, ignorando")
		return
	}
	s.warmupRunning = true
	s.warmupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.warmupMutex.Lock()
		s.warmupRunning = false
		s.warmupMutex.Unlock()
	}()

	users, err := s.userRepo.ListActiveUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para o pré-aquecimento de análise")
		return
	}

	if len(users) == 0 {
		logrus.Info("Nenhum usuário ativo para o pré-aquecimento de análise")
		return
	}

	filter := s.currentWindow()

	logrus.WithFields(logrus.Fields{
		"usuarios":    len(users),
		"data_inicio": filter.StartDate,
		"data_fim":    filter.EndDate,
	}).Info("Iniciando pré-aquecimento de análise")

	warmed := 0
	for i, user := range users {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		if _, err := s.analysisService.Analyze(filter, user.ID, user.IsAdmin()); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).
				Warn("Falha ao pré-aquecer análise para o usuário")
			continue
		}
		warmed++
	}

	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"usuarios_ok":    warmed,
		"usuarios_total": len(users),
		"duracao":        time.Since(startTime).String(),
	}).Info("Pré-aquecimento de análise concluído")
}

// currentWindow devolve a janela de análise terminando hoje e começando
// LookbackDays atrás, no formato ISO usado pelos filtros.
func (s *AnalysisWarmupService) currentWindow() domain.AnalysisFilter {
	end := time.Now()
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	return domain.AnalysisFilter{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}
}
