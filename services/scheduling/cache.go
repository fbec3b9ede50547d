// File: services/scheduling/cache.go
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// DefaultAvailabilityService computes day slots through the constraint
// loader, fronted by a short-TTL Redis cache. Cache failures degrade to a
// recompute; invalidation bumps a per-staff/date generation counter so no
// key scan is needed.
type DefaultAvailabilityService struct {
	Loader ConstraintLoader
	Cache  *redis.Client
	TTL    time.Duration
}

func (s *DefaultAvailabilityService) DaySlots(ctx context.Context, q AvailabilityQuery) (models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	key := s.cacheKey(ctx, q)
	if key != "" {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var resp models.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	cons, err := s.Loader.Load(ctx, q.StaffID, q.Date)
	if err != nil {
		return models.AvailabilityResponse{}, err
	}

	slots := CalculateSlots(cons, q.Duration, models.SlotOptions{
		SlotInterval: q.SlotInterval,
		AvoidGaps:    q.AvoidGaps,
		TravelBuffer: q.TravelBuffer,
	})
	resp := models.AvailabilityResponse{Date: q.Date, Slots: slots}

	if key != "" {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.TTL).Err(); err != nil {
				logger.Debug("availability cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return resp, nil
}

// Invalidate bumps the generation counter for the staff/date pair. An empty
// date bumps the staff-level counter instead, covering every cached date.
func (s *DefaultAvailabilityService) Invalidate(ctx context.Context, staffID, date string) {
	if s.Cache == nil {
		return
	}
	key := staffGenKey(staffID)
	if date != "" {
		key = dateGenKey(staffID, date)
	}
	if err := s.Cache.Incr(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("availability cache invalidation failed",
			zap.String("staffId", staffID), zap.String("date", date), zap.Error(err))
	}
}

func staffGenKey(staffID string) string {
	return fmt.Sprintf("availgen:%s", staffID)
}

func dateGenKey(staffID, date string) string {
	return fmt.Sprintf("availgen:%s:%s", staffID, date)
}

// cacheKey folds the query parameters and the current generations into one
// key. Returns "" when caching is disabled or the generation lookup fails.
func (s *DefaultAvailabilityService) cacheKey(ctx context.Context, q AvailabilityQuery) string {
	if s.Cache == nil {
		return ""
	}
	gens, err := s.Cache.MGet(ctx, staffGenKey(q.StaffID), dateGenKey(q.StaffID, q.Date)).Result()
	if err != nil && err != redis.Nil {
		return ""
	}
	var staffGen, dateGen string
	if len(gens) == 2 {
		staffGen, _ = gens[0].(string)
		dateGen, _ = gens[1].(string)
	}
	return fmt.Sprintf("avail:%s:%s:%d:%d:%d:%t:%s:%s",
		q.StaffID, q.Date, q.Duration, q.SlotInterval, q.TravelBuffer, q.AvoidGaps, staffGen, dateGen)
}
