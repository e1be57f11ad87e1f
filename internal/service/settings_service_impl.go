package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

type settingsService struct {
	repos Repos
	options
}

func NewSettingsService(repos Repos, opts ...Option) SettingsService {
	return &settingsService{repos: repos, options: buildOptions(opts)}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return loadSettings(ctx, s.logger, s.repos)
}

func (s *settingsService) update(ctx context.Context, name string, fields map[string]any, fn func(*domain.Settings) error) (out domain.Settings, err error) {
	done := s.track(ctx, name, fields)
	defer func() { done(err) }()

	out, err = loadSettings(ctx, s.logger, s.repos)
	if err != nil {
		return out, err
	}
	if err = fn(&out); err != nil {
		return out, err
	}
	if err = s.repos.Settings.Save(ctx, out); err != nil {
		s.logger.ErrorContext(ctx, "saving settings failed", "error", err)
		return out, err
	}
	return out, nil
}

func (s *settingsService) SetUnitSystem(ctx context.Context, u domain.UnitSystem) (domain.Settings, error) {
	return s.update(ctx, "set-unit-system", map[string]any{"unit_system": u}, func(st *domain.Settings) error {
		if u != domain.UnitMetric && u != domain.UnitImperial {
			return fmt.Errorf("unknown unit system %q", u)
		}
		st.UnitSystem = u
		return nil
	})
}

func (s *settingsService) SetDefaultRestTime(ctx context.Context, seconds int) (domain.Settings, error) {
	return s.update(ctx, "set-default-rest", map[string]any{"seconds": seconds}, func(st *domain.Settings) error {
		if seconds < 0 {
			return fmt.Errorf("rest time must not be negative, got %d", seconds)
		}
		st.DefaultRestTime = seconds
		return nil
	})
}

func (s *settingsService) SetSoundEffects(ctx context.Context, on bool) (domain.Settings, error) {
	return s.update(ctx, "set-sound-effects", map[string]any{"on": on}, func(st *domain.Settings) error {
		st.SoundEffects = on
		return nil
	})
}
