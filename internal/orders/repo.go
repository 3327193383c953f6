package orders

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
)

var ErrOrderNotFound = errors.New("order not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const orderColumns = `
	id, code, type, status, table_id,
	COALESCE(customer_name,''), COALESCE(customer_phone,''), COALESCE(address,''),
	total, created_at, updated_at
`

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.Code, &o.Type, &o.Status, &o.TableID,
		&o.CustomerName, &o.CustomerPhone, &o.Address,
		&o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Create persists the order with its items in one transaction. Items carry
// both the computed prices and the pricing inputs they derive from.
func (r *Repo) Create(ctx context.Context, o order.Order) (order.Order, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return order.Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := scanOrder(tx.QueryRow(ctx, `
		INSERT INTO orders (code, type, status, table_id, customer_name, customer_phone, address, total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+orderColumns,
		o.Code, o.Type, o.Status, o.TableID, o.CustomerName, o.CustomerPhone, o.Address, o.Total,
	))
	if err != nil {
		return order.Order{}, err
	}

	for _, it := range o.Items {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO order_items
			  (order_id, product_id, product_name, quantity, option_item_ids, option_names, observation,
			   unit_base, addons_total, unit_price, free_qty, line_total, promotion_labels)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			RETURNING id
		`, created.ID, it.ProductID, it.ProductName, it.Quantity, it.OptionItemIDs, it.OptionNames, it.Observation,
			it.UnitBase, it.AddonsTotal, it.UnitPrice, it.FreeQty, it.LineTotal, it.PromoLabels,
		).Scan(&id)
		if err != nil {
			return order.Order{}, errors.Wrap(err, "order item insert")
		}
		it.ID = id
		it.OrderID = created.ID
		created.Items = append(created.Items, it)
	}

	if err := tx.Commit(ctx); err != nil {
		return order.Order{}, err
	}
	return created, nil
}

func (r *Repo) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]order.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, option_item_ids, option_names,
		       COALESCE(observation,''), unit_base, addons_total, unit_price, free_qty, line_total, promotion_labels
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id ASC
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]order.Item)
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.OptionItemIDs, &it.OptionNames,
			&it.Observation, &it.UnitBase, &it.AddonsTotal, &it.UnitPrice, &it.FreeQty, &it.LineTotal, &it.PromoLabels,
		); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, ErrOrderNotFound
		}
		return order.Order{}, err
	}
	items, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return order.Order{}, err
	}
	o.Items = items[o.ID]
	return o, nil
}

// GetByCode is the public tracking lookup.
func (r *Repo) GetByCode(ctx context.Context, code string) (order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, ErrOrderNotFound
		}
		return order.Order{}, err
	}
	items, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return order.Order{}, err
	}
	o.Items = items[o.ID]
	return o, nil
}

// List returns recent orders for the dashboard, newest first, optionally
// filtered by status.
func (r *Repo) List(ctx context.Context, status *string, limit int) ([]order.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := `SELECT ` + orderColumns + ` FROM orders `
	args := []any{}
	if status != nil && *status != "" {
		q += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 `
		args = append(args, *status, limit)
	} else {
		q += ` ORDER BY created_at DESC LIMIT $1 `
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []order.Order
	var ids []int64
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

// ListOpenForTable returns the non-final orders of a dine-in table since
// it was opened.
func (r *Repo) ListOpenForTable(ctx context.Context, tableID int64, since time.Time) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE table_id = $1 AND created_at >= $2 AND status <> $3
		ORDER BY created_at ASC
	`, tableID, since, order.StatusCanceled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []order.Order
	var ids []int64
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id int64, status string) (order.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
		RETURNING `+orderColumns,
		id, status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, ErrOrderNotFound
		}
		return order.Order{}, err
	}
	return o, nil
}
