package models

import "strings"

// WishlistGoal is the single savings goal of a user. The image is an opaque
// payload, stored and returned byte for byte.
type WishlistGoal struct {
	// ItemLabel names the wished-for item.
	ItemLabel string `json:"item_label"`

	// TargetAmount is the positive price of the item.
	TargetAmount int64 `json:"target_amount"`

	// Image is the optional picture of the item, base64 encoded in JSON.
	Image []byte `json:"image,omitempty"`

	// ImageContentType is sniffed from Image on write. Informational only.
	ImageContentType string `json:"image_content_type,omitempty"`
}

// IsEmpty reports whether g is the legacy "no goal" marker: an empty label
// with a zero target.
func (g WishlistGoal) IsEmpty() bool {
	return strings.TrimSpace(g.ItemLabel) == "" && g.TargetAmount == 0
}
