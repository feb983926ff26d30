package app

import (
	"context"
	"log"
	"time"

	"youthbridge/internal/config"
	"youthbridge/internal/database"
	dbpostgres "youthbridge/internal/database/postgres"
	"youthbridge/internal/infrastructure/cache"
	"youthbridge/internal/repository"
	"youthbridge/internal/usecase"
	jobuc "youthbridge/internal/usecase/job"
	"youthbridge/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	JobBoard        usecase.JobBoardUsecase
	CandidateSearch usecase.CandidateSearchUsecase
	CandidateMatch  usecase.CandidateMatchUsecase
	Refresh         *jobuc.RefreshService
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rds := cache.NewRedis(cfg.Redis, cfg.Refresh.CacheTTL, logger)
	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	jobs := repository.NewPostgresJobRepository(db)
	candidates := repository.NewPostgresCandidateRepository(db)

	return &Container{
		Config:          cfg,
		DB:              db,
		Cache:           rds,
		Hub:             hub,
		JobBoard:        usecase.NewJobBoardUsecase(jobs, rds, logger, cfg.Refresh.CacheTTL),
		CandidateSearch: usecase.NewCandidateSearchUsecase(jobs, candidates),
		CandidateMatch:  usecase.NewCandidateMatchUsecase(jobs, candidates),
		Refresh:         jobuc.NewRefreshService(rds, ws.NotifyDeadlinesRefreshed, logger, cfg.Refresh.Interval),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Refresh != nil {
		c.Refresh.Stop()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
