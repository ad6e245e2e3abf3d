package model

// NotificationPreferences is the single persisted user record. It is replaced
// wholesale on every update and defaults to disabled with no halls selected.
type NotificationPreferences struct {
	Enabled       bool          `json:"enabled"`
	SelectedHalls []HallID      `json:"selectedHalls"`
	NotifyOnLevel BusynessLevel `json:"notifyOnLevel"` // "low" or "moderate"
}

// DefaultPreferences returns the record used when nothing has been stored yet
// or the stored record cannot be decoded.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		Enabled:       false,
		SelectedHalls: []HallID{},
		NotifyOnLevel: LevelModerate,
	}
}
