package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type Summary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	OrderCount int             `json:"order_count"`
	Gross      decimal.Decimal `json:"gross"`
	AvgTicket  decimal.Decimal `json:"avg_ticket"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type ProductTotal struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// Canceled orders are excluded from every aggregate.
const notCanceled = `o.status <> 'CANCELED'`

func (r *Repo) Summary(ctx context.Context, from, to time.Time) (Summary, error) {
	s := Summary{From: from, To: to}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(o.total), 0), COALESCE(ROUND(AVG(o.total), 2), 0)
		FROM orders o
		WHERE o.created_at >= $1 AND o.created_at < $2 AND `+notCanceled,
		from, to,
	).Scan(&s.OrderCount, &s.Gross, &s.AvgTicket)
	return s, err
}

func (r *Repo) ByCategory(ctx context.Context, from, to time.Time) ([]CategoryTotal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.name, SUM(oi.quantity), SUM(oi.line_total)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE o.created_at >= $1 AND o.created_at < $2 AND `+notCanceled+`
		GROUP BY c.name
		ORDER BY SUM(oi.line_total) DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Quantity, &ct.Total); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func (r *Repo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductTotal, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := r.db.Query(ctx, `
		SELECT oi.product_id, oi.product_name, SUM(oi.quantity), SUM(oi.line_total)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2 AND `+notCanceled+`
		GROUP BY oi.product_id, oi.product_name
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductTotal
	for rows.Next() {
		var pt ProductTotal
		if err := rows.Scan(&pt.ProductID, &pt.ProductName, &pt.Quantity, &pt.Total); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}
