package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pocket-money/internal/store"
	"github.com/MKhiriev/go-pocket-money/models"
)

func TestWishlistModel_NoGoal(t *testing.T) {
	pocket := newTestPocket(t)
	pocket.EXPECT().Wishlist(gomock.Any()).Return(models.WishlistGoal{}, store.ErrWishlistNotFound)

	m := NewWishlistModel(context.Background(), pocket)
	m.Update(m.Init()())

	assert.False(t, m.hasGoal)
	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "No goal yet")

	// nothing to clear
	m.Update(keyPress("d"))
	assert.Equal(t, wishlistView, m.mode)
}

func TestWishlistModel_ShowsGoal(t *testing.T) {
	m := NewWishlistModel(context.Background(), newTestPocket(t))

	m.Update(wishlistLoadedMsg{goal: models.WishlistGoal{
		ItemLabel:        "bike",
		TargetAmount:     14000,
		Image:            []byte{1, 2, 3},
		ImageContentType: "image/png",
	}})

	view := m.View()
	assert.Contains(t, view, "bike")
	assert.Contains(t, view, "14 000")
	assert.Contains(t, view, "image/png, 3 bytes")
}

func TestWishlistModel_Clear(t *testing.T) {
	pocket := newTestPocket(t)
	pocket.EXPECT().ClearWishlist(gomock.Any()).Return(nil)
	pocket.EXPECT().Wishlist(gomock.Any()).Return(models.WishlistGoal{}, store.ErrWishlistNotFound)

	m := NewWishlistModel(context.Background(), pocket)
	m.Update(wishlistLoadedMsg{goal: models.WishlistGoal{ItemLabel: "bike", TargetAmount: 100}})

	m.Update(keyPress("d"))
	require.Equal(t, wishlistConfirmClear, m.mode)
	assert.Contains(t, m.View(), `Clear "bike"?`)

	_, cmd := m.Update(keyPress("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	_, reload := m.Update(cmd())
	require.NotNil(t, reload)
	assert.Equal(t, "Wishlist cleared", m.status)

	m.Update(reload())
	assert.False(t, m.hasGoal)
}

func TestWishlistModel_ClearCancelled(t *testing.T) {
	m := NewWishlistModel(context.Background(), newTestPocket(t))
	m.Update(wishlistLoadedMsg{goal: models.WishlistGoal{ItemLabel: "bike", TargetAmount: 100}})

	m.Update(keyPress("d"))
	_, cmd := m.Update(keyPress("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, wishlistView, m.mode)
}

func TestWishlistModel_EditPrefillsDraft(t *testing.T) {
	m := NewWishlistModel(context.Background(), newTestPocket(t))
	m.Update(wishlistLoadedMsg{goal: models.WishlistGoal{ItemLabel: "bike", TargetAmount: 14000}})

	m.Update(keyPress("e"))

	require.Equal(t, wishlistEdit, m.mode)
	assert.Equal(t, "bike", m.draft.ItemLabel)
	assert.Equal(t, "14000", m.draft.TargetAmount)
	assert.Contains(t, m.View(), "WISHLIST: SET GOAL")

	m.Update(keyPress("esc"))
	assert.Equal(t, wishlistView, m.mode)
}

func TestWishlistModel_SaveGoal(t *testing.T) {
	pocket := newTestPocket(t)
	goal := models.WishlistGoal{ItemLabel: "bike", TargetAmount: 14000}
	pocket.EXPECT().SetWishlist(gomock.Any(), goal).Return(nil)

	m := NewWishlistModel(context.Background(), pocket)

	assert.Equal(t, wishlistSavedMsg{}, m.cmdSave(goal)())
}

func TestWishlistDraft_ToGoal(t *testing.T) {
	picture := filepath.Join(t.TempDir(), "bike.png")
	require.NoError(t, os.WriteFile(picture, []byte("png-bytes"), 0o600))
	previous := models.WishlistGoal{ItemLabel: "old", TargetAmount: 1, Image: []byte("old-image")}

	t.Run("keeps previous image", func(t *testing.T) {
		goal, err := (&wishlistDraft{ItemLabel: " bike ", TargetAmount: "14000"}).toGoal(previous)
		require.NoError(t, err)
		assert.Equal(t, models.WishlistGoal{ItemLabel: "bike", TargetAmount: 14000, Image: []byte("old-image")}, goal)
	})

	t.Run("reads new picture", func(t *testing.T) {
		goal, err := (&wishlistDraft{ItemLabel: "bike", TargetAmount: "14000", ImagePath: picture}).toGoal(previous)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), goal.Image)
	})

	t.Run("missing picture", func(t *testing.T) {
		_, err := (&wishlistDraft{ItemLabel: "bike", TargetAmount: "14000", ImagePath: picture + ".nope"}).toGoal(previous)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad target", func(t *testing.T) {
		_, err := (&wishlistDraft{ItemLabel: "bike", TargetAmount: "-5"}).toGoal(previous)
		assert.Error(t, err)
	})
}
