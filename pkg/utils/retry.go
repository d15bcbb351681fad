package utils

import (
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Retry повторяет fn с экспоненциальной задержкой. Ошибки из skip
// возвращаются сразу, без повторов — повторять "не найдено" бессмысленно.
func Retry(cfg RetryConfig, fn func() error, skip ...error) error {
	return retry(cfg, fn, func(err error) bool { return !matchesAny(err, skip) })
}

// RetryOn повторяет fn только на ошибках из retryable. Любая другая ошибка
// возвращается после первой же попытки.
func RetryOn(cfg RetryConfig, fn func() error, retryable ...error) error {
	return retry(cfg, fn, func(err error) bool { return matchesAny(err, retryable) })
}

func retry(cfg RetryConfig, fn func() error, shouldRetry func(error) bool) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if !shouldRetry(err) || attempt == cfg.MaxAttempts {
			return err
		}

		time.Sleep(delay)

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}

func matchesAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
