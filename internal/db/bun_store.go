// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

// CalculationModel maps the `calculations` table for bun queries.
type CalculationModel struct {
	bun.BaseModel `bun:"table:calculations"`
	ID            int       `bun:"id,pk,autoincrement"`
	Expression    string    `bun:"expression,notnull"`
	Operator      string    `bun:"operator,notnull"`
	OperandA      string    `bun:"operand_a,notnull"`
	OperandB      string    `bun:"operand_b,notnull"`
	Result        string    `bun:"result,notnull"`
	Remainder     string    `bun:"remainder"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BunStore implements Store on top of a bun.DB, regardless of dialect.
type BunStore struct {
	db  *sql.DB
	bun *bun.DB
}

// createSchema creates the calculations table when it does not exist yet.
func (s *BunStore) createSchema(ctx context.Context) error {
	_, err := s.bun.NewCreateTable().
		Model((*CalculationModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func calculationToModel(m CalculationModel) model.Calculation {
	return model.Calculation{
		ID:         m.ID,
		Expression: m.Expression,
		Operator:   m.Operator,
		OperandA:   m.OperandA,
		OperandB:   m.OperandB,
		Result:     m.Result,
		Remainder:  m.Remainder,
		CreatedAt:  m.CreatedAt,
	}
}

// AddCalculation inserts a history entry and returns its ID.
func (s *BunStore) AddCalculation(c model.Calculation) (int, error) {
	ctx := context.Background()
	m := &CalculationModel{
		Expression: c.Expression,
		Operator:   c.Operator,
		OperandA:   c.OperandA,
		OperandB:   c.OperandB,
		Result:     c.Result,
		Remainder:  c.Remainder,
		CreatedAt:  c.CreatedAt,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if _, err := s.bun.NewInsert().Model(m).Exec(ctx); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// GetAllCalculations returns the full history, oldest first.
func (s *BunStore) GetAllCalculations() ([]model.Calculation, error) {
	ctx := context.Background()
	var ms []CalculationModel
	if err := s.bun.NewSelect().Model(&ms).Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Calculation, len(ms))
	for i, m := range ms {
		out[i] = calculationToModel(m)
	}
	return out, nil
}

// GetRecentCalculations returns up to limit entries, newest first.
func (s *BunStore) GetRecentCalculations(limit int) ([]model.Calculation, error) {
	ctx := context.Background()
	var ms []CalculationModel
	q := s.bun.NewSelect().Model(&ms).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Calculation, len(ms))
	for i, m := range ms {
		out[i] = calculationToModel(m)
	}
	return out, nil
}

// CountCalculations returns the number of stored entries.
func (s *BunStore) CountCalculations() (int, error) {
	ctx := context.Background()
	return s.bun.NewSelect().Model((*CalculationModel)(nil)).Count(ctx)
}

// ClearCalculations deletes the whole history. Bun refuses an unscoped
// DELETE, so the WHERE clause is spelled out.
func (s *BunStore) ClearCalculations() error {
	ctx := context.Background()
	_, err := s.bun.NewDelete().
		Model((*CalculationModel)(nil)).
		Where("1 = 1").
		Exec(ctx)
	return err
}

// Close releases the underlying connections.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
