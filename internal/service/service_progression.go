package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pocket-money/internal/config"
	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/progression"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

// maxAccrueAttempts bounds the read-modify-write loop of Accrue when another
// instance keeps winning the compare-and-swap or the database keeps failing
// transiently.
const maxAccrueAttempts = 3

type progressionService struct {
	userRepository store.UserRepository

	xpGain     int
	pointsGain int

	locks *keyedMutex
	now   func() time.Time

	logger *logger.Logger
}

func NewProgressionService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) ProgressionService {
	return &progressionService{
		userRepository: userRepository,
		xpGain:         cfg.XPGain,
		pointsGain:     cfg.PointsGain,
		locks:          newKeyedMutex(),
		now:            time.Now,
		logger:         logger,
	}
}

// Accrue applies one activity event. Accruals of the same user are
// serialised in process; the stored counters are additionally guarded by a
// compare-and-swap so that concurrent instances never lose an update.
func (p *progressionService) Accrue(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	unlock := p.locks.Lock(username)
	defer unlock()

	today := models.NewDate(p.now())

	var lastErr error
	for attempt := 1; attempt <= maxAccrueAttempts; attempt++ {
		user, err := p.userRepository.FindUserByName(ctx, username)
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("func", "*progressionService.Accrue").Str("username", username).Msg("accrual for unknown user skipped")
			return nil
		}
		if err != nil {
			if !errors.Is(err, store.ErrTransient) {
				return fmt.Errorf("reading progress: %w", err)
			}
			lastErr = err
			log.Debug().Int("attempt", attempt).Str("username", username).Msg("transient error reading progress, retrying")
			continue
		}

		next := progression.Accrue(user.Progress, today, p.xpGain, p.pointsGain)
		err = p.userRepository.UpdateProgress(ctx, username, user.Progress, next)
		if err == nil {
			return nil
		}
		if !retryableAccrueError(err) {
			return fmt.Errorf("saving progress: %w", err)
		}

		lastErr = err
		log.Debug().Err(err).Int("attempt", attempt).Str("username", username).Msg("progress not saved, retrying")
	}

	return fmt.Errorf("saving progress after %d attempts: %w", maxAccrueAttempts, lastErr)
}

func retryableAccrueError(err error) bool {
	return errors.Is(err, store.ErrProgressConflict) || errors.Is(err, store.ErrTransient)
}

func (p *progressionService) Report(ctx context.Context, username string) (models.ProgressReport, error) {
	user, err := p.userRepository.FindUserByName(ctx, username)
	if err != nil {
		return models.ProgressReport{}, err
	}

	return progression.Report(user.Name, user.Progress), nil
}
