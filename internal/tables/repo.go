package tables

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/table"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableOccupied = errors.New("table already occupied")
	ErrTableFree     = errors.New("table is not open")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const tableColumns = `id, number, COALESCE(label,''), status, opened_at, created_at, updated_at`

func scanTable(row pgx.Row) (table.Table, error) {
	var t table.Table
	err := row.Scan(&t.ID, &t.Number, &t.Label, &t.Status, &t.OpenedAt, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return table.Table{}, ErrTableNotFound
	}
	return t, err
}

func (r *Repo) List(ctx context.Context) ([]table.Table, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tableColumns+` FROM tables ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []table.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (table.Table, error) {
	return scanTable(r.db.QueryRow(ctx, `SELECT `+tableColumns+` FROM tables WHERE id = $1`, id))
}

func (r *Repo) Create(ctx context.Context, number int, label string) (table.Table, error) {
	return scanTable(r.db.QueryRow(ctx, `
		INSERT INTO tables (number, label, status)
		VALUES ($1, $2, $3)
		RETURNING `+tableColumns,
		number, label, table.StatusFree,
	))
}

// Open marks a free table occupied; the guard in the WHERE clause makes
// two concurrent opens race safely, only one wins.
func (r *Repo) Open(ctx context.Context, id int64) (table.Table, error) {
	t, err := scanTable(r.db.QueryRow(ctx, `
		UPDATE tables SET status = $2, opened_at = now(), updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING `+tableColumns,
		id, table.StatusOccupied, table.StatusFree,
	))
	if errors.Is(err, ErrTableNotFound) {
		// distinguish missing from already occupied
		if _, getErr := r.Get(ctx, id); getErr == nil {
			return table.Table{}, ErrTableOccupied
		}
		return table.Table{}, ErrTableNotFound
	}
	return t, err
}

// Close frees the table. The caller reads the session orders before
// closing to present the bill.
func (r *Repo) Close(ctx context.Context, id int64) (table.Table, error) {
	t, err := scanTable(r.db.QueryRow(ctx, `
		UPDATE tables SET status = $2, opened_at = NULL, updated_at = now()
		WHERE id = $1 AND status = $3
		RETURNING `+tableColumns,
		id, table.StatusFree, table.StatusOccupied,
	))
	if errors.Is(err, ErrTableNotFound) {
		if _, getErr := r.Get(ctx, id); getErr == nil {
			return table.Table{}, ErrTableFree
		}
		return table.Table{}, ErrTableNotFound
	}
	return t, err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	return err
}
