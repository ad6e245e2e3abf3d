package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"dining-status-backend/internal/model"
)

// Sender defines the interface for sending a single web push message.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender backed by the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WebPush implements Platform on top of VAPID web push. Permission maps onto
// subscription state: the capability is absent (permanently denied) when no
// VAPID keys are configured, granted once at least one push subscription is
// registered, and undecided otherwise. Delivery fans out to every registered
// subscription through a small worker pool.
type WebPush struct {
	size    int
	jobs    chan Notification
	db      *gorm.DB
	options *webpush.Options
	sender  Sender
}

// NewWebPush creates the web push platform with the given worker pool size.
// A nil options or missing key pair is allowed and reports denied.
func NewWebPush(size int, db *gorm.DB, options *webpush.Options) *WebPush {
	if size < 1 {
		size = 1
	}
	return &WebPush{
		size:    size,
		jobs:    make(chan Notification, size),
		db:      db,
		options: options,
		sender:  &WebPushSender{},
	}
}

// SetSender replaces the delivery backend. Intended for tests.
func (w *WebPush) SetSender(s Sender) { w.sender = s }

// Start launches the delivery workers.
func (w *WebPush) Start(ctx context.Context) {
	for i := 0; i < w.size; i++ {
		go w.worker(ctx, i)
	}
}

func (w *WebPush) worker(ctx context.Context, id int) {
	log.Printf("notification worker %d started", id)
	for {
		select {
		case n := <-w.jobs:
			w.deliver(ctx, n)
		case <-ctx.Done():
			log.Printf("notification worker %d shutting down", id)
			return
		}
	}
}

func (w *WebPush) configured() bool {
	return w.options != nil && w.options.VAPIDPublicKey != "" && w.options.VAPIDPrivateKey != ""
}

// RequestPermission reports the effective permission. A server cannot prompt
// the user; permission becomes granted when a browser registers a push
// subscription through the API.
func (w *WebPush) RequestPermission(ctx context.Context) (PermissionStatus, error) {
	return w.Status(ctx), nil
}

// Status derives the permission state from configuration and the
// subscription registry.
func (w *WebPush) Status(ctx context.Context) PermissionStatus {
	if !w.configured() {
		return PermissionDenied
	}
	var count int64
	if err := w.db.WithContext(ctx).Model(&model.PushSubscription{}).Count(&count).Error; err != nil {
		log.Printf("failed to count push subscriptions: %v", err)
		return PermissionDefault
	}
	if count > 0 {
		return PermissionGranted
	}
	return PermissionDefault
}

// Show enqueues a notification for delivery to all subscriptions.
func (w *WebPush) Show(ctx context.Context, n Notification) error {
	if !w.configured() {
		return fmt.Errorf("web push is not configured")
	}
	if n.Icon == "" {
		n.Icon = DefaultIcon
	}
	select {
	case w.jobs <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jobs exposes the job channel for tests.
func (w *WebPush) Jobs() chan Notification { return w.jobs }

// deliver fans a notification out to every registered subscription.
func (w *WebPush) deliver(ctx context.Context, n Notification) {
	var subscriptions []model.PushSubscription
	if err := w.db.WithContext(ctx).Find(&subscriptions).Error; err != nil {
		log.Printf("failed to fetch push subscriptions: %v", err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("failed to encode notification payload: %v", err)
		return
	}

	log.Printf("sending %d push notifications: %s", len(subscriptions), n.Title)
	for _, sub := range subscriptions {
		w.send(ctx, sub, payload)
	}
}

// send pushes one message and prunes the subscription if the push service
// reports it gone.
func (w *WebPush) send(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := w.sender.Send(payload, wpSub, w.options)
	if err != nil {
		log.Printf("error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("subscription for endpoint %s is expired, deleting", sub.Endpoint)
		if err := w.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
