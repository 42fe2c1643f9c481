package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"careerhub/internal/database"
	"careerhub/internal/domain/form"

	"github.com/google/uuid"
)

// stubTx counts writes and fails on the Nth so transactional batches can be
// driven into their rollback path.
type stubTx struct {
	execs      int
	failOn     int
	zeroRowsOn int
	committed  bool
	rolledBack bool
}

var errMidBatch = errors.New("deadlock detected")

func (t *stubTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	t.execs++
	if t.failOn > 0 && t.execs == t.failOn {
		return 0, errMidBatch
	}
	if t.zeroRowsOn > 0 && t.execs == t.zeroRowsOn {
		return 0, nil
	}
	return 1, nil
}

func (t *stubTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not supported")
}

func (t *stubTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type stubDB struct {
	tx *stubTx
}

func (d *stubDB) Ping(ctx context.Context) error { return nil }
func (d *stubDB) Close() error                   { return nil }
func (d *stubDB) SQLDB() *sql.DB                 { return nil }

func (d *stubDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return 0, errors.New("not supported")
}

func (d *stubDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not supported")
}

func (d *stubDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (d *stubDB) Begin(ctx context.Context) (database.Tx, error) {
	return d.tx, nil
}

func reorderBatch(n int) []FieldOrder {
	orders := make([]FieldOrder, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, FieldOrder{ID: uuid.New(), SortOrder: i + 1})
	}
	return orders
}

func TestReorder_MidBatchFailureRollsBackWholeBatch(t *testing.T) {
	tx := &stubTx{failOn: 2}
	repo := NewPostgresFormFieldRepository(&stubDB{tx: tx})

	err := repo.Reorder(context.Background(), reorderBatch(3))
	if !errors.Is(err, errMidBatch) {
		t.Fatalf("expected the mid-batch error, got %v", err)
	}
	if tx.execs != 2 {
		t.Fatalf("expected the batch to stop at the failing pair, got %d execs", tx.execs)
	}
	if tx.committed {
		t.Fatal("a failed batch must never commit")
	}
	if !tx.rolledBack {
		t.Fatal("a failed batch must roll back")
	}
}

func TestReorder_UnknownFieldRollsBackWholeBatch(t *testing.T) {
	// A pair whose id matches no row updates nothing; the batch must fail
	// as a whole rather than keep the pairs applied so far.
	tx := &stubTx{zeroRowsOn: 2}
	repo := NewPostgresFormFieldRepository(&stubDB{tx: tx})

	err := repo.Reorder(context.Background(), reorderBatch(3))
	if !errors.Is(err, form.ErrNotFound) {
		t.Fatalf("expected form.ErrNotFound, got %v", err)
	}
	if tx.committed {
		t.Fatal("a batch with an unknown id must never commit")
	}
	if !tx.rolledBack {
		t.Fatal("a batch with an unknown id must roll back")
	}
}

func TestReorder_CleanBatchCommits(t *testing.T) {
	tx := &stubTx{}
	repo := NewPostgresFormFieldRepository(&stubDB{tx: tx})

	if err := repo.Reorder(context.Background(), reorderBatch(3)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tx.execs != 3 {
		t.Fatalf("expected 3 execs, got %d", tx.execs)
	}
	if !tx.committed {
		t.Fatal("a clean batch must commit")
	}
}
