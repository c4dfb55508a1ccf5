package api

import (
	"time"

	"gorm.io/gorm"

	"breate/backend/internal/common"
	"breate/backend/internal/config"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/logging"
	"breate/backend/internal/metrics"
	"breate/backend/internal/services"
)

type Repositories struct {
	User      *repositories.UserRepository
	Reference *repositories.ReferenceRepository
	Coalition *repositories.CoalitionRepository
	Project   *repositories.ProjectRepository
	Collab    *repositories.CollabRepository
}

type Services struct {
	Cache     common.Cache
	User      *services.UserService
	Profile   *services.ProfileService
	Discover  *services.DiscoverService
	Coalition *services.CoalitionService
	Project   *services.ProjectService
	Collab    *services.CollabService
	Reference *services.ReferenceService
}

type Dependencies struct {
	Cfg      *config.Config
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services against the GORM
// connection. The cache backend is Redis when REDIS_HOST is set, in-memory
// otherwise.
func InitDependencies(cfg *config.Config, gormDB *gorm.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		User:      repositories.NewUserRepository(gormDB),
		Reference: repositories.NewReferenceRepository(gormDB),
		Coalition: repositories.NewCoalitionRepository(gormDB),
		Project:   repositories.NewProjectRepository(gormDB),
		Collab:    repositories.NewCollabRepository(gormDB),
	}

	var cacheSvc common.Cache
	if cfg.RedisHost != "" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		cacheSvc = redisCache
		logging.Info("Using Redis cache", "host", cfg.RedisHost)
	} else {
		cacheSvc = common.NewCacheService(10*time.Minute, 30*time.Minute)
		logging.Info("Using in-memory cache")
	}

	projectSvc := services.NewProjectService(repos.Project, metricsReg)

	svcs := &Services{
		Cache:     cacheSvc,
		User:      services.NewUserService(repos.User, cfg, metricsReg),
		Profile:   services.NewProfileService(repos.User),
		Discover:  services.NewDiscoverService(repos.User, projectSvc),
		Coalition: services.NewCoalitionService(repos.Coalition),
		Project:   projectSvc,
		Collab:    services.NewCollabService(repos.Collab, repos.User, metricsReg),
		Reference: services.NewReferenceService(repos.Reference, cacheSvc, metricsReg),
	}

	return &Dependencies{
		Cfg:      cfg,
		Repo:     repos,
		Services: svcs,
	}, nil
}
