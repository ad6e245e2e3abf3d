package notify

import "context"

// PermissionStatus mirrors the browser notification permission states.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
	PermissionDefault PermissionStatus = "default" // not yet decided
)

// Notification is one user-facing alert. Clients auto-dismiss it after ten
// seconds and refocus the app on click; Tag collapses repeats.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Tag   string `json:"tag"`
}

// DefaultIcon is used when a notification does not specify one.
const DefaultIcon = "/icon-192.png"

// Tag under which all busyness alerts are grouped.
const busynessTag = "dining-busyness"

// Platform is the notification capability the gate runs against. The real
// implementation is web push; tests script a fake.
type Platform interface {
	// RequestPermission asks the platform for notification permission and
	// reports the resulting status. Idempotent once decided.
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	// Status reports the current permission without prompting. A platform
	// lacking the capability entirely reports denied.
	Status(ctx context.Context) PermissionStatus
	// Show dispatches a notification. Best effort; delivery failures are
	// logged, not returned.
	Show(ctx context.Context, n Notification) error
}
