// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pocket-money/models"
)

const (
	usersTable    = "users"
	expensesTable = "expenses"
	incomeTable   = "income"
	wishlistTable = "wishlist"
)

var userColumns = []string{"name", "secret", "last_active_date", "streak_days", "xp", "points"}

// entryTable maps an entry kind to its ledger table.
func entryTable(kind models.EntryKind) (string, error) {
	switch kind {
	case models.EntryKindExpense:
		return expensesTable, nil
	case models.EntryKindIncome:
		return incomeTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryKind, kind)
	}
}

// dateArg converts an optional date into a driver argument.
func dateArg(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return *d
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Name, user.SecretHash, dateArg(user.LastActiveDate), user.StreakDays, user.XP, user.Points).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildUpdateProgressQuery builds a compare-and-swap update: it only matches
// the row while the stored counters still equal expected.
func buildUpdateProgressQuery(b sq.StatementBuilderType, name string, expected, next models.Progress) (string, []any, error) {
	return b.Update(usersTable).
		Set("last_active_date", dateArg(next.LastActiveDate)).
		Set("streak_days", next.StreakDays).
		Set("xp", next.XP).
		Set("points", next.Points).
		Where(sq.Eq{
			"name":        name,
			"streak_days": expected.StreakDays,
			"xp":          expected.XP,
			"points":      expected.Points,
		}).
		ToSql()
}

func buildTopUsersQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select("name", "xp", "points").
		From(usersTable).
		OrderBy("points DESC", "name ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildInsertEntryQuery(b sq.StatementBuilderType, entry models.Entry) (string, []any, error) {
	table, err := entryTable(entry.Kind)
	if err != nil {
		return "", nil, err
	}

	insert := b.Insert(table).Suffix("RETURNING id")
	if entry.Kind == models.EntryKindExpense {
		return insert.
			Columns("username", "date", "label", "amount", "category", "necessity").
			Values(entry.Username, entry.Date, entry.Label, entry.Amount, entry.Category, string(entry.Necessity)).
			ToSql()
	}

	return insert.
		Columns("username", "date", "label", "amount", "category").
		Values(entry.Username, entry.Date, entry.Label, entry.Amount, entry.Category).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, username string, kind models.EntryKind) (string, []any, error) {
	table, err := entryTable(kind)
	if err != nil {
		return "", nil, err
	}

	columns := []string{"id", "date", "label", "amount", "category"}
	if kind == models.EntryKindExpense {
		columns = append(columns, "necessity")
	}

	return b.Select(columns...).
		From(table).
		Where(sq.Eq{"username": username}).
		OrderBy("date DESC", "id DESC").
		ToSql()
}

func buildDailyTotalQuery(b sq.StatementBuilderType, username string, kind models.EntryKind, date models.Date) (string, []any, error) {
	table, err := entryTable(kind)
	if err != nil {
		return "", nil, err
	}

	return b.Select("COALESCE(SUM(amount), 0)").
		From(table).
		Where(sq.Eq{"username": username, "date": date}).
		ToSql()
}

func buildGetWishlistQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("item_label", "target_amount", "image_blob", "image_content_type").
		From(wishlistTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteWishlistQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Delete(wishlistTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertWishlistQuery(b sq.StatementBuilderType, username string, goal models.WishlistGoal) (string, []any, error) {
	return b.Insert(wishlistTable).
		Columns("username", "item_label", "target_amount", "image_blob", "image_content_type").
		Values(username, goal.ItemLabel, goal.TargetAmount, goal.Image, goal.ImageContentType).
		ToSql()
}
