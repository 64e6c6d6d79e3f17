package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName      = errors.New("name must be 1 to 32 characters")
	ErrInvalidSecret    = errors.New("secret must consist of digits only and have the configured length")
	ErrInvalidKind      = errors.New("kind must be expense or income")
	ErrEmptyLabel       = errors.New("label is required")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidNecessity = errors.New("necessity must be need or want for expenses and empty for income")
	ErrEmptyItemLabel   = errors.New("item label is required")
	ErrInvalidTarget    = errors.New("target amount must be greater than zero")
	ErrImageTooLarge    = errors.New("image exceeds the maximum size")
	ErrEmptyPrompt      = errors.New("prompt is required")
)
