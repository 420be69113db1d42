package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	profileRepo "superlaw/database/repository/profile"
	"superlaw/models"
	"superlaw/utils"

	"go.uber.org/zap"
)

const searchCacheTTL = 30 * time.Second

// Search runs the public directory query. Results are cached briefly in Redis
// keyed by the criteria, since the same searches repeat while users browse.
func (s *DefaultProfileService) Search(ctx context.Context, input models.SearchInput) ([]models.LawyerProfileView, error) {
	criteria := profileRepo.SearchCriteria{
		Name:       input.Name,
		Categories: input.Categories,
		Regions:    input.Regions,
		Sort:       input.Sort,
	}

	key := searchCacheKey(criteria)
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		var views []models.LawyerProfileView
		if err := json.Unmarshal([]byte(cached), &views); err == nil {
			return views, nil
		}
	}

	views, err := s.Repo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := cache.Set(ctx, key, payload, searchCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache search results", zap.Error(err))
		}
	}
	return views, nil
}

func searchCacheKey(criteria profileRepo.SearchCriteria) string {
	raw, _ := json.Marshal(criteria)
	sum := sha256.Sum256(raw)
	return "search:" + hex.EncodeToString(sum[:])
}
