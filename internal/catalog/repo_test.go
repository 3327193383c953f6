package catalog

import (
	"context"
	"regexp"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingDB captures the last statement and its bound arguments.
type recordingDB struct {
	sql  string
	args []any
}

func (r *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.sql = sql
	r.args = args
	return zeroRow{}
}

func (r *recordingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (r *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql = sql
	r.args = args
	return pgconn.CommandTag{}, nil
}

func (r *recordingDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return nil, nil
}

type zeroRow struct{}

func (zeroRow) Scan(...any) error { return nil }

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// highestPlaceholder returns the largest $n the statement declares.
func highestPlaceholder(sql string) int {
	max := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(sql, -1) {
		n, _ := strconv.Atoi(m[1])
		if n > max {
			max = n
		}
	}
	return max
}

func TestCreateCategoryBindsEveryPlaceholder(t *testing.T) {
	db := &recordingDB{}
	r := &Repo{db: db}

	if _, err := r.CreateCategory(context.Background(), "Pizzas Doces", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want, got := highestPlaceholder(db.sql), len(db.args); want != got {
		t.Fatalf("statement declares %d placeholders but %d arguments are bound", want, got)
	}
	if db.args[1] != "pizzas-doces" {
		t.Errorf("slug bound as %v, want pizzas-doces", db.args[1])
	}
	if db.args[2] != 7 {
		t.Errorf("sort order bound as %v, want 7", db.args[2])
	}
}

func TestSetProductAvailabilityBindsEveryPlaceholder(t *testing.T) {
	db := &recordingDB{}
	r := &Repo{db: db}

	// CommandTag zero value reports 0 affected rows, so ErrProductNotFound
	// is the expected outcome here; binding is what this test checks.
	_ = r.SetProductAvailability(context.Background(), 3, false)

	if want, got := highestPlaceholder(db.sql), len(db.args); want != got {
		t.Fatalf("statement declares %d placeholders but %d arguments are bound", want, got)
	}
}
