package interfaces

import "context"

// ISettingsRepository reads the global key/value settings table.

type ISettingsRepository interface {
	// GetSLASettings returns the sla_* keys as key -> hours. Values that do
	// not parse as positive integers are omitted.
	GetSLASettings(ctx context.Context) (map[string]int, error)
}
