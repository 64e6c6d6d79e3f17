package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pocket-money/models"
)

// Field names accepted by [PocketMoneyValidator.Validate].
const (
	FieldName   = "name"
	FieldSecret = "secret"

	FieldKind      = "kind"
	FieldLabel     = "label"
	FieldAmount    = "amount"
	FieldNecessity = "necessity"

	FieldItemLabel    = "item_label"
	FieldTargetAmount = "target_amount"
	FieldImage        = "image"

	FieldPrompt = "prompt"
)

// MaxNameLength is the longest accepted user name, counted in characters.
const MaxNameLength = 32

// PocketMoneyValidator validates credentials, ledger entries, wishlist goals
// and chat requests.
type PocketMoneyValidator struct {
	secretLength  int
	maxImageBytes int64
}

// NewPocketMoneyValidator returns a [Validator] requiring secrets of exactly
// secretLength digits and images of at most maxImageBytes bytes.
func NewPocketMoneyValidator(secretLength int, maxImageBytes int64) Validator {
	return &PocketMoneyValidator{
		secretLength:  secretLength,
		maxImageBytes: maxImageBytes,
	}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of every supported model are accepted.
func (v *PocketMoneyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	case models.WishlistGoal:
		return v.validateWishlistGoal(value, fields...)
	case *models.WishlistGoal:
		return v.validateWishlistGoal(*value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PocketMoneyValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidName(c.Name) {
				return ErrInvalidName
			}
		case FieldSecret:
			if !isDigits(c.Secret, v.secretLength) {
				return ErrInvalidSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PocketMoneyValidator) validateEntry(e models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldLabel, FieldAmount, FieldNecessity}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if !e.Kind.Valid() {
				return ErrInvalidKind
			}
		case FieldLabel:
			if strings.TrimSpace(e.Label) == "" {
				return ErrEmptyLabel
			}
		case FieldAmount:
			if e.Amount <= 0 {
				return ErrInvalidAmount
			}
		case FieldNecessity:
			switch e.Kind {
			case models.EntryKindExpense:
				if !e.Necessity.Valid() {
					return ErrInvalidNecessity
				}
			case models.EntryKindIncome:
				if e.Necessity != "" {
					return ErrInvalidNecessity
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PocketMoneyValidator) validateWishlistGoal(g models.WishlistGoal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemLabel, FieldTargetAmount, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldItemLabel:
			if strings.TrimSpace(g.ItemLabel) == "" {
				return ErrEmptyItemLabel
			}
		case FieldTargetAmount:
			if g.TargetAmount <= 0 {
				return ErrInvalidTarget
			}
		case FieldImage:
			if v.maxImageBytes > 0 && int64(len(g.Image)) > v.maxImageBytes {
				return ErrImageTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PocketMoneyValidator) validateChatRequest(r models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(r.Prompt) == "" {
				return ErrEmptyPrompt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 1 && n <= MaxNameLength
}

// isDigits reports whether s is exactly length ASCII digits.
func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
