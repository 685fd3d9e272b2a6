package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/laliga-insights/internal/platform/querybuilder"
	"github.com/riskibarqy/laliga-insights/internal/platform/resilience"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
)

// Store is the shared handle behind the postgres repositories. Queries go
// through a circuit breaker so an unavailable database fails fast.
type Store struct {
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
}

func NewStore(db *sqlx.DB, breakerCfg resilience.CircuitBreakerConfig) *Store {
	return &Store{
		db:      db,
		breaker: resilience.NewCircuitBreaker(breakerCfg),
	}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) guard(fn func() error) error {
	err := s.breaker.Do(fn, countsAsOutage)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: postgres: %v", usecase.ErrDependencyUnavailable, err)
	}
	return err
}

// countsAsOutage excludes empty results and caller cancellation from the breaker.
func countsAsOutage(err error) bool {
	return !isNotFound(err) && !errors.Is(err, context.Canceled)
}

// selectRows runs the query, retrying with inlined literals when a pooler
// rejects the bound statement.
func (s *Store) selectRows(ctx context.Context, dest any, query *qb.SelectBuilder, literal func() *qb.SelectBuilder) error {
	sqlQuery, args, err := query.ToSQL()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return s.guard(func() error {
		err := s.db.SelectContext(ctx, dest, sqlQuery, args...)
		if err == nil || literal == nil || !shouldRetryLiteral(err) {
			return err
		}
		literalQuery, literalArgs, buildErr := literal().ToSQL()
		if buildErr != nil {
			return fmt.Errorf("build literal fallback query: %w", buildErr)
		}
		return s.db.SelectContext(ctx, dest, literalQuery, literalArgs...)
	})
}

func (s *Store) getRow(ctx context.Context, dest any, query *qb.SelectBuilder, literal func() *qb.SelectBuilder) (bool, error) {
	sqlQuery, args, err := query.ToSQL()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	err = s.guard(func() error {
		err := s.db.GetContext(ctx, dest, sqlQuery, args...)
		if err == nil || literal == nil || !shouldRetryLiteral(err) {
			return err
		}
		literalQuery, literalArgs, buildErr := literal().ToSQL()
		if buildErr != nil {
			return fmt.Errorf("build literal fallback query: %w", buildErr)
		}
		return s.db.GetContext(ctx, dest, literalQuery, literalArgs...)
	})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func int64Literal(column string, value int64) qb.Condition {
	return qb.Expr(fmt.Sprintf("%s = %d", column, value))
}
