package repository

import "errors"

var (
	ErrInvalidSettingsData = errors.New("invalid settings data")
)
