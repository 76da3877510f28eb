package service

import (
	"context"
	"database/sql"

	"github.com/devhussain7/medium-api/internal/store"
)

// SetTxRunner replaces the transaction runner so tests can drive the signup
// path without a live database handle.
func (s *UserServiceImpl) SetTxRunner(fn func(ctx context.Context, db *sql.DB, txFn store.TxFn) error) {
	s.runInTx = fn
}
