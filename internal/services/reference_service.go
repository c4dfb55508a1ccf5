package services

import (
	"context"
	"fmt"
	"time"

	"breate/backend/internal/common"
	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/metrics"
	"breate/backend/internal/models/dtos"
)

const referenceCacheTTL = 10 * time.Minute

// ReferenceService serves the seeded archetype and tier lists through the
// cache layer; the tables only change at startup.
type ReferenceService struct {
	repo       *repositories.ReferenceRepository
	cache      common.Cache
	metricsReg *metrics.MetricsRegistry
}

func NewReferenceService(repo *repositories.ReferenceRepository, cache common.Cache, metricsReg *metrics.MetricsRegistry) *ReferenceService {
	return &ReferenceService{
		repo:       repo,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

func (s *ReferenceService) ListArchetypes(ctx context.Context) ([]dtos.ArchetypeResponse, error) {
	key := constants.CacheKeyPrefixArchetype + "all"
	if val, found := s.cache.Get(key); found {
		if out, ok := val.([]dtos.ArchetypeResponse); ok {
			s.recordCacheHit(constants.CacheKeyPrefixArchetype, true)
			return out, nil
		}
	}
	s.recordCacheHit(constants.CacheKeyPrefixArchetype, false)

	archetypes, err := s.repo.ListArchetypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load archetypes: %w", err)
	}

	out := make([]dtos.ArchetypeResponse, 0, len(archetypes))
	for _, a := range archetypes {
		out = append(out, dtos.ArchetypeResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
		})
	}

	s.cache.Set(key, out, referenceCacheTTL)
	return out, nil
}

func (s *ReferenceService) ListTiers(ctx context.Context) ([]dtos.TierResponse, error) {
	key := constants.CacheKeyPrefixTier + "all"
	if val, found := s.cache.Get(key); found {
		if out, ok := val.([]dtos.TierResponse); ok {
			s.recordCacheHit(constants.CacheKeyPrefixTier, true)
			return out, nil
		}
	}
	s.recordCacheHit(constants.CacheKeyPrefixTier, false)

	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiers: %w", err)
	}

	out := make([]dtos.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, dtos.TierResponse{
			ID:          t.ID,
			Name:        t.Name,
			Level:       t.Level,
			Description: t.Description,
		})
	}

	s.cache.Set(key, out, referenceCacheTTL)
	return out, nil
}

func (s *ReferenceService) recordCacheHit(pattern string, hit bool) {
	if s.metricsReg == nil {
		return
	}
	if hit {
		s.metricsReg.CacheHitsTotal.WithLabelValues(pattern).Inc()
	} else {
		s.metricsReg.CacheMissesTotal.WithLabelValues(pattern).Inc()
	}
}
