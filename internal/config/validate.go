package config

import "time"

func ValidateForRun(cfg *Config) error {
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		return ErrInvalidTimeZone
	}
	return nil
}
