package services

import (
	"context"
	"database/sql"
	"time"

	"dompet-api/models"
	"dompet-api/utils"
)

// summarizeItems computes income/expense totals over the current item rows.
// It deliberately never reads wallet.balance: items can pre-date the wallet
// or span multiple books, so the running balance and the item sums diverge.
//
// The date window is inclusive on both ends and only applies when both
// bounds are present; a single bound is ignored.
func summarizeItems(ctx context.Context, db *sql.DB, column, id string, start, end *time.Time) (*models.Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount END), 0)::bigint AS income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount END), 0)::bigint AS expense
		FROM items
		WHERE ` + column + ` = $1`

	args := []interface{}{id}
	if start != nil && end != nil {
		query += " AND date >= $2 AND date <= $3"
		args = append(args, *start, *end)
	}

	var income, expense int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&income, &expense); err != nil {
		return nil, err
	}

	net := income - expense
	return &models.Summary{
		TotalIncome:    models.Money(income),
		TotalExpense:   models.Money(expense),
		NetFlow:        models.Money(net),
		IncomeDisplay:  utils.FormatCents(income),
		ExpenseDisplay: utils.FormatCents(expense),
		NetFlowDisplay: utils.FormatCents(net),
	}, nil
}
