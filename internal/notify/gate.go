package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/model"
	"dining-status-backend/internal/prefs"
)

// DefaultCooldown is the minimum wall-clock gap between successive alerts
// for the same hall.
const DefaultCooldown = 30 * time.Minute

// OccupancyProvider yields a fresh reading for threshold evaluation.
type OccupancyProvider interface {
	CurrentOccupancy(hall model.Hall) model.OccupancyReading
}

// Gate evaluates the notification threshold against live occupancy and fires
// at most one alert per hall per cooldown window. The cooldown map is
// in-memory only; it resets on process start.
type Gate struct {
	mu           sync.Mutex
	platform     Platform
	store        prefs.Store
	provider     OccupancyProvider
	clock        clock.Clock
	cooldown     time.Duration
	lastNotified map[model.HallID]time.Time
}

// NewGate wires a gate. A non-positive cooldown falls back to DefaultCooldown.
func NewGate(platform Platform, store prefs.Store, provider OccupancyProvider, c clock.Clock, cooldown time.Duration) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Gate{
		platform:     platform,
		store:        store,
		provider:     provider,
		clock:        c,
		cooldown:     cooldown,
		lastNotified: make(map[model.HallID]time.Time),
	}
}

// Preferences loads the current preference record.
func (g *Gate) Preferences(ctx context.Context) (model.NotificationPreferences, error) {
	return g.store.Load(ctx)
}

// UpdatePreferences replaces the stored record wholesale and persists it
// immediately.
func (g *Gate) UpdatePreferences(ctx context.Context, p model.NotificationPreferences) error {
	if p.SelectedHalls == nil {
		p.SelectedHalls = []model.HallID{}
	}
	return g.store.Save(ctx, p)
}

// PermissionStatus reports the platform permission without prompting.
func (g *Gate) PermissionStatus(ctx context.Context) PermissionStatus {
	return g.platform.Status(ctx)
}

// Enable requests platform permission and, only if granted, flips the stored
// enabled flag on. A platform that has already denied permission is never
// prompted again. Returns whether permission is granted.
func (g *Gate) Enable(ctx context.Context) (bool, error) {
	if g.platform.Status(ctx) == PermissionDenied {
		return false, nil
	}

	status, err := g.platform.RequestPermission(ctx)
	if err != nil {
		return false, fmt.Errorf("permission request failed: %w", err)
	}
	if status != PermissionGranted {
		return false, nil
	}

	p, err := g.store.Load(ctx)
	if err != nil {
		return true, err
	}
	p.Enabled = true
	if err := g.store.Save(ctx, p); err != nil {
		return true, err
	}
	return true, nil
}

// Disable unconditionally flips the enabled flag off. No permission
// interaction.
func (g *Gate) Disable(ctx context.Context) error {
	p, err := g.store.Load(ctx)
	if err != nil {
		return err
	}
	p.Enabled = false
	return g.store.Save(ctx, p)
}

// ShouldNotify is the threshold predicate: at the "moderate" setting an alert
// fires for low or moderate readings, at "low" only for low. Busy and packed
// never fire.
func ShouldNotify(level model.BusynessLevel, threshold model.BusynessLevel) bool {
	if threshold == model.LevelModerate {
		return level == model.LevelLow || level == model.LevelModerate
	}
	return level == model.LevelLow
}

// CheckAndNotify evaluates every selected hall once. It is a no-op unless
// notifications are enabled and permission is currently granted. Halls still
// inside their cooldown window are skipped without fetching a reading.
func (g *Gate) CheckAndNotify(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.store.Load(ctx)
	if err != nil {
		log.Printf("notification check skipped, cannot load preferences: %v", err)
		return
	}
	if !p.Enabled || g.platform.Status(ctx) != PermissionGranted {
		return
	}

	now := g.clock.Now()
	for _, id := range p.SelectedHalls {
		hall, ok := model.HallByID(string(id))
		if !ok {
			continue
		}
		if last, seen := g.lastNotified[hall.ID]; seen && now.Sub(last) < g.cooldown {
			continue
		}

		reading := g.provider.CurrentOccupancy(hall)
		if !ShouldNotify(reading.Level, p.NotifyOnLevel) {
			continue
		}

		n := Notification{
			Title: fmt.Sprintf("%s is %s!", hall.Name, reading.Level),
			Body:  fmt.Sprintf("Current occupancy: %d/%d. Great time to visit!", reading.Current, reading.Capacity),
			Icon:  DefaultIcon,
			Tag:   busynessTag,
		}
		if err := g.platform.Show(ctx, n); err != nil {
			log.Printf("failed to dispatch notification for %s: %v", hall.ID, err)
			continue
		}
		g.lastNotified[hall.ID] = now
	}
}
