package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pocket-money/internal/logger"
	"github.com/MKhiriev/go-pocket-money/models"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &entryRepository{db: db, logger: logger.Nop()}, mock
}

func TestSaveEntry_Expense(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	entry := models.Entry{
		Kind:      models.EntryKindExpense,
		Username:  "mia",
		Date:      mustDate(t, "2026-04-10"),
		Label:     "chips",
		Amount:    300,
		Category:  "snack",
		Necessity: models.NecessityWant,
	}

	mock.ExpectQuery("INSERT INTO expenses (.+) RETURNING id").
		WithArgs("mia", "2026-04-10", "chips", int64(300), "snack", "want").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	saved, err := repo.SaveEntry(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "chips", saved.Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntry_IncomeHasNoNecessity(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	entry := models.Entry{
		Kind:     models.EntryKindIncome,
		Username: "mia",
		Date:     mustDate(t, "2026-04-10"),
		Label:    "weekly allowance",
		Amount:   1000,
		Category: "allowance",
	}

	mock.ExpectQuery("INSERT INTO income \\(username,date,label,amount,category\\)").
		WithArgs("mia", "2026-04-10", "weekly allowance", int64(1000), "allowance").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.SaveEntry(context.Background(), entry)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntry_UnknownKind(t *testing.T) {
	repo, _ := newTestEntryRepo(t)

	_, err := repo.SaveEntry(context.Background(), models.Entry{Kind: "gift"})

	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, ErrUnknownEntryKind)
}

func TestSaveEntry_DBError(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("INSERT INTO expenses").WillReturnError(errors.New("boom"))

	_, err := repo.SaveEntry(context.Background(), models.Entry{Kind: models.EntryKindExpense, Username: "mia"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListEntries_NewestFirst(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	rows := sqlmock.NewRows([]string{"id", "date", "label", "amount", "category", "necessity"}).
		AddRow(9, "2026-04-10", "gum", 50, "snack", "want").
		AddRow(8, "2026-04-10", "bus", 120, "transport", "need").
		AddRow(3, "2026-04-08", "old", 10, "other", nil)
	mock.ExpectQuery("SELECT id, date, label, amount, category, necessity FROM expenses WHERE username = \\$1 ORDER BY date DESC, id DESC").
		WithArgs("mia").
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background(), "mia", models.EntryKindExpense)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(9), entries[0].ID)
	assert.Equal(t, models.NecessityWant, entries[0].Necessity)
	assert.Equal(t, "2026-04-10", entries[1].Date.String())
	assert.Equal(t, models.Necessity(""), entries[2].Necessity)
	assert.Equal(t, "mia", entries[2].Username)
	assert.Equal(t, models.EntryKindExpense, entries[2].Kind)
}

func TestListEntries_Empty(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("SELECT id, date, label, amount, category FROM income").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "label", "amount", "category"}))

	entries, err := repo.ListEntries(context.Background(), "mia", models.EntryKindIncome)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListEntries_RowError(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	rows := sqlmock.NewRows([]string{"id", "date", "label", "amount", "category"}).
		AddRow(1, "2026-04-10", "x", 1, "other").
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT (.+) FROM income").WillReturnRows(rows)

	_, err := repo.ListEntries(context.Background(), "mia", models.EntryKindIncome)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestDailyTotal(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM expenses WHERE date = \\$1 AND username = \\$2").
		WithArgs("2026-04-10", "mia").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(420))

	total, err := repo.DailyTotal(context.Background(), "mia", models.EntryKindExpense, mustDate(t, "2026-04-10"))

	require.NoError(t, err)
	assert.Equal(t, int64(420), total)
}
