package handlers

import (
	"context"
	"sort"
	"time"

	"cardcheck/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

// HealthCheck pings one backing service.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// Health reports 200 when every dependency answers and 503 otherwise.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	services := fiber.Map{}
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
		err := h.checks[name](ctx)
		cancel()

		if err != nil {
			services[name] = "unavailable"
			status = "degraded"
			continue
		}
		services[name] = "connected"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"version":  Version,
		"services": services,
	})
}

func CacheStats(cacheService *cache.CacheService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		poolStats := cacheService.GetStats()

		return c.JSON(fiber.Map{
			"pool_stats": fiber.Map{
				"hits":        poolStats.Hits,
				"misses":      poolStats.Misses,
				"timeouts":    poolStats.Timeouts,
				"total_conns": poolStats.TotalConns,
				"idle_conns":  poolStats.IdleConns,
				"stale_conns": poolStats.StaleConns,
			},
		})
	}
}
