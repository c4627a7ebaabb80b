package ports

import "go.trai.ch/six/internal/core/domain"

// SettingsLoader reads the user's persistent settings. A missing settings
// file is not an error; the zero Settings value is returned.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type SettingsLoader interface {
	Load() (*domain.Settings, error)
}
