package promotions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/promotion"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const promoColumns = `
	id, name, is_active, COALESCE(days,''),
	trigger_product_ids, COALESCE(trigger_category,''),
	reward_type, reward_product_ids, COALESCE(reward_category,''), reward_option_item_ids,
	discount_percent, fixed_price, max_free_qty,
	created_at, updated_at
`

func scanPromotion(row interface{ Scan(...any) error }) (promotion.Promotion, error) {
	var p promotion.Promotion
	err := row.Scan(
		&p.ID, &p.Name, &p.IsActive, &p.Days,
		&p.TriggerProductIDs, &p.TriggerCategory,
		&p.RewardType, &p.RewardProductIDs, &p.RewardCategory, &p.RewardOptionIDs,
		&p.DiscountPercent, &p.FixedPrice, &p.MaxFreeQty,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *Repo) List(ctx context.Context) ([]promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promoColumns+` FROM promotions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []promotion.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListActive returns the enabled promotions. Day-of-week filtering stays in
// the pricing core so the weekday is decided once by the caller, in the
// store's timezone.
func (r *Repo) ListActive(ctx context.Context) ([]promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, `SELECT `+promoColumns+` FROM promotions WHERE is_active = true ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []promotion.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (promotion.Promotion, error) {
	return scanPromotion(r.db.QueryRow(ctx, `SELECT `+promoColumns+` FROM promotions WHERE id = $1`, id))
}

type CreateInput struct {
	Name              string
	IsActive          bool
	Days              string
	TriggerProductIDs []int64
	TriggerCategory   string
	RewardType        string
	RewardProductIDs  []int64
	RewardCategory    string
	RewardOptionIDs   []int64
	DiscountPercent   string
	FixedPrice        string
	MaxFreeQty        int
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (promotion.Promotion, error) {
	return scanPromotion(r.db.QueryRow(ctx, `
		INSERT INTO promotions
		  (name, is_active, days, trigger_product_ids, trigger_category,
		   reward_type, reward_product_ids, reward_category, reward_option_item_ids,
		   discount_percent, fixed_price, max_free_qty)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING `+promoColumns,
		in.Name, in.IsActive, in.Days, in.TriggerProductIDs, in.TriggerCategory,
		in.RewardType, in.RewardProductIDs, in.RewardCategory, in.RewardOptionIDs,
		in.DiscountPercent, in.FixedPrice, in.MaxFreeQty,
	))
}

func (r *Repo) Update(ctx context.Context, id int64, in CreateInput) (promotion.Promotion, error) {
	return scanPromotion(r.db.QueryRow(ctx, `
		UPDATE promotions SET
		  name = $2, is_active = $3, days = $4,
		  trigger_product_ids = $5, trigger_category = $6,
		  reward_type = $7, reward_product_ids = $8, reward_category = $9, reward_option_item_ids = $10,
		  discount_percent = $11, fixed_price = $12, max_free_qty = $13,
		  updated_at = now()
		WHERE id = $1
		RETURNING `+promoColumns,
		id, in.Name, in.IsActive, in.Days, in.TriggerProductIDs, in.TriggerCategory,
		in.RewardType, in.RewardProductIDs, in.RewardCategory, in.RewardOptionIDs,
		in.DiscountPercent, in.FixedPrice, in.MaxFreeQty,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	return err
}
