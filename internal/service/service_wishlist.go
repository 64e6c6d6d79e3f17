package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/internal/validators"
	"github.com/MKhiriev/go-pocket-money/models"
)

// Thumbnail bounds in pixels.
const (
	DefaultThumbnailSide = 256
	MaxThumbnailSide     = 1024
)

type wishlistService struct {
	wishlistRepository store.WishlistRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewWishlistService(wishlistRepository store.WishlistRepository, validator validators.Validator, logger *logger.Logger) WishlistService {
	return &wishlistService{
		wishlistRepository: wishlistRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (w *wishlistService) Get(ctx context.Context, username string) (models.WishlistGoal, error) {
	return w.wishlistRepository.GetGoal(ctx, username)
}

// Replace swaps the user's goal for goal. The image bytes are kept as they
// are; only their content type is sniffed.
func (w *wishlistService) Replace(ctx context.Context, username string, goal models.WishlistGoal) error {
	if err := w.validator.Validate(ctx, goal); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*wishlistService.Replace").Msg("wishlist goal rejected")
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	goal.ImageContentType = ""
	if len(goal.Image) > 0 {
		goal.ImageContentType = http.DetectContentType(goal.Image)
	}

	return w.wishlistRepository.ReplaceGoal(ctx, username, goal)
}

func (w *wishlistService) Clear(ctx context.Context, username string) error {
	return w.wishlistRepository.DeleteGoal(ctx, username)
}

// Thumbnail decodes the stored image and fits it into a maxSide square,
// keeping the aspect ratio. The stored image itself is left untouched.
func (w *wishlistService) Thumbnail(ctx context.Context, username string, maxSide int) ([]byte, error) {
	goal, err := w.wishlistRepository.GetGoal(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(goal.Image) == 0 {
		return nil, ErrNoWishlistImage
	}

	img, err := imaging.Decode(bytes.NewReader(goal.Image))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("content_type", goal.ImageContentType).Msg("wishlist image cannot be decoded")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}

	side := clampThumbnailSide(maxSide)
	thumb := imaging.Fit(img, side, side, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

func clampThumbnailSide(side int) int {
	switch {
	case side <= 0:
		return DefaultThumbnailSide
	case side > MaxThumbnailSide:
		return MaxThumbnailSide
	default:
		return side
	}
}

