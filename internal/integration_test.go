package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dining-status-backend/config"
	"dining-status-backend/internal/api"
	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/menu"
	"dining-status-backend/internal/model"
	"dining-status-backend/internal/notify"
	"dining-status-backend/internal/prefs"
	"dining-status-backend/internal/sim"
	"dining-status-backend/internal/station"
)

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

// countingSender records every push the platform delivers.
type countingSender struct {
	mu       sync.Mutex
	sent     atomic.Int32
	payloads [][]byte
	ready    chan struct{}
}

func (s *countingSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	s.mu.Unlock()
	s.sent.Add(1)
	select {
	case s.ready <- struct{}{}:
	default:
	}
	return &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(bytes.NewBufferString("")),
	}, nil
}

// TestNotificationPipeline walks the full subscribe-enable-alert flow: a
// client registers a push subscription over HTTP, enables notifications,
// selects a hall, and then a scheduled check fires exactly one alert while
// the hall is quiet.
func TestNotificationPipeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()
	require.NoError(t, testDB.AutoMigrate(&model.PushSubscription{}, &prefs.Record{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A weekday mid-afternoon lull: 15% occupancy, level low.
	clk := clock.Fixed(time.Date(2026, 3, 4, 15, 2, 0, 0, time.UTC))
	rng := fixedRand{0.5}
	simulator := sim.New(clk, rng)
	catalog := menu.NewCatalog(clk)
	stations := station.New(simulator, catalog, rng)

	sender := &countingSender{ready: make(chan struct{}, 1)}
	platform := notify.NewWebPush(1, testDB, &webpush.Options{
		VAPIDPublicKey:  "test-public-key",
		VAPIDPrivateKey: "test-private-key",
	})
	platform.SetSender(sender)
	platform.Start(ctx)

	store := prefs.NewGormStore(testDB)
	gate := notify.NewGate(platform, store, simulator, clk, 30*time.Minute)

	h := api.NewHandler(simulator, stations, catalog, gate, platform, clk, testDB, nil)
	router := api.NewRouter(h, &config.ServerConfig{
		RateLimitPerSec:   1000,
		RateLimitBurst:    1000,
		OccupancyCacheTTL: 30 * time.Second,
		MenuCacheTTL:      60 * time.Second,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 1. With no subscription on file, permission is still undecided.
	assert.Equal(t, notify.PermissionDefault, platform.Status(ctx))

	// 2. The client registers its push subscription.
	w := do(http.MethodPut, "/api/subscriptions", gin.H{
		"endpoint": "https://push.example.com/integration",
		"p256dh":   "test_p256dh",
		"auth":     "test_auth",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, notify.PermissionGranted, platform.Status(ctx))

	// 3. Enabling notifications now succeeds.
	w = do(http.MethodPost, "/api/notifications/enable", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var enableResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enableResp))
	assert.Equal(t, true, enableResp["granted"])

	// 4. Watch Scott at the moderate threshold.
	w = do(http.MethodPut, "/api/preferences", gin.H{
		"enabled":       true,
		"selectedHalls": []string{"scott"},
		"notifyOnLevel": "moderate",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 5. One scheduled check fires one push.
	gate.CheckAndNotify(ctx)

	select {
	case <-sender.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("no push was delivered")
	}

	sender.mu.Lock()
	require.Len(t, sender.payloads, 1)
	var n notify.Notification
	require.NoError(t, json.Unmarshal(sender.payloads[0], &n))
	sender.mu.Unlock()
	assert.Equal(t, "Scott Dining Hall is low!", n.Title)
	assert.Contains(t, n.Body, "Great time to visit!")

	// 6. A second check inside the cooldown window stays silent.
	gate.CheckAndNotify(ctx)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), sender.sent.Load())
}
