package cron

import (
	log "log/slog"
	"stackunderflow/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	tallySyncJob *job.TallySyncJob
	viewFlushJob *job.ViewFlushJob
}

func NewCronManager(tallySyncJob *job.TallySyncJob, viewFlushJob *job.ViewFlushJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		tallySyncJob: tallySyncJob,
		viewFlushJob: viewFlushJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 1m", s.tallySyncJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 1m", s.viewFlushJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
