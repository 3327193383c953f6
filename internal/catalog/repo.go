package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/catalog"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/pricing"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/util"
)

// querier is the slice of pgxpool.Pool the repo uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type Repo struct {
	db querier
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) ListCategories(ctx context.Context, all bool) ([]catalog.Category, error) {
	q := `
		SELECT id, name, slug, is_active, sort_order, created_at, updated_at
		FROM categories
	`
	if !all {
		q += ` WHERE is_active = true `
	}
	q += ` ORDER BY sort_order ASC, name ASC `

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateCategory(ctx context.Context, name string, sortOrder int) (catalog.Category, error) {
	var c catalog.Category
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, slug, sort_order, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, name, slug, is_active, sort_order, created_at, updated_at
	`, name, util.Slugify(name), sortOrder).Scan(
		&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// ListPublic returns available products without their option groups, for
// the menu listing. Disabled products and categories are filtered out.
func (r *Repo) ListPublic(ctx context.Context, categorySlug *string) ([]catalog.Product, error) {
	q := `
		SELECT
		  p.id, p.category_id, c.name, p.name, COALESCE(p.description,''), COALESCE(p.image_url,''),
		  p.price, p.promo_price, COALESCE(p.promo_days,''), p.is_available, p.sort_order,
		  p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_available = true AND c.is_active = true
	`
	args := []any{}
	if categorySlug != nil && *categorySlug != "" {
		q += ` AND c.slug = $1 `
		args = append(args, *categorySlug)
	}
	q += ` ORDER BY p.sort_order ASC, p.name ASC `

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Category, &p.Name, &p.Description, &p.ImageURL,
			&p.Price, &p.PromoPrice, &p.PromoDays, &p.IsAvailable, &p.SortOrder,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProduct loads one product with its option groups and items. Disabled
// groups/items are included: the pricing core decides what they mean.
func (r *Repo) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var p catalog.Product
	err := r.db.QueryRow(ctx, `
		SELECT
		  p.id, p.category_id, c.name, p.name, COALESCE(p.description,''), COALESCE(p.image_url,''),
		  p.price, p.promo_price, COALESCE(p.promo_days,''), p.is_available, p.sort_order,
		  p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id).Scan(
		&p.ID, &p.CategoryID, &p.Category, &p.Name, &p.Description, &p.ImageURL,
		&p.Price, &p.PromoPrice, &p.PromoDays, &p.IsAvailable, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, pricing.ErrProductNotFound
		}
		return catalog.Product{}, err
	}

	groups, err := r.loadGroups(ctx, []int64{p.ID})
	if err != nil {
		return catalog.Product{}, err
	}
	p.Groups = groups[p.ID]
	return p, nil
}

// ProductsForPricing loads the products referenced by a cart, with groups
// and items, keyed by id. Missing ids are simply absent from the map; the
// caller turns that into ProductNotFound per line.
func (r *Repo) ProductsForPricing(ctx context.Context, ids []int64) (map[int64]catalog.Product, error) {
	if len(ids) == 0 {
		return map[int64]catalog.Product{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT
		  p.id, p.category_id, c.name, p.name, COALESCE(p.description,''), COALESCE(p.image_url,''),
		  p.price, p.promo_price, COALESCE(p.promo_days,''), p.is_available, p.sort_order,
		  p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]catalog.Product, len(ids))
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Category, &p.Name, &p.Description, &p.ImageURL,
			&p.Price, &p.PromoPrice, &p.PromoDays, &p.IsAvailable, &p.SortOrder,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups, err := r.loadGroups(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, p := range out {
		p.Groups = groups[id]
		out[id] = p
	}
	return out, nil
}

func (r *Repo) loadGroups(ctx context.Context, productIDs []int64) (map[int64][]catalog.OptionGroup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, title, min_select, max_select, charge_mode, is_available, sort_order
		FROM option_groups
		WHERE product_id = ANY($1)
		ORDER BY product_id, sort_order ASC, id ASC
	`, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byProduct := make(map[int64][]catalog.OptionGroup)
	var groupIDs []int64
	for rows.Next() {
		var g catalog.OptionGroup
		if err := rows.Scan(&g.ID, &g.ProductID, &g.Title, &g.MinSelect, &g.MaxSelect, &g.ChargeMode, &g.IsAvailable, &g.SortOrder); err != nil {
			return nil, err
		}
		byProduct[g.ProductID] = append(byProduct[g.ProductID], g)
		groupIDs = append(groupIDs, g.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return byProduct, nil
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT id, group_id, name, COALESCE(description,''), COALESCE(image_url,''), price, is_available, sort_order
		FROM option_items
		WHERE group_id = ANY($1)
		ORDER BY group_id, sort_order ASC, id ASC
	`, groupIDs)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	byGroup := make(map[int64][]catalog.OptionItem)
	for itemRows.Next() {
		var it catalog.OptionItem
		if err := itemRows.Scan(&it.ID, &it.GroupID, &it.Name, &it.Description, &it.ImageURL, &it.Price, &it.IsAvailable, &it.SortOrder); err != nil {
			return nil, err
		}
		byGroup[it.GroupID] = append(byGroup[it.GroupID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for pid, groups := range byProduct {
		for i := range groups {
			groups[i].Items = byGroup[groups[i].ID]
		}
		byProduct[pid] = groups
	}
	return byProduct, nil
}

type CreateOptionItemInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       string
	IsAvailable bool
	SortOrder   int
}

type CreateOptionGroupInput struct {
	Title      string
	MinSelect  int
	MaxSelect  int
	ChargeMode string
	SortOrder  int
	Items      []CreateOptionItemInput
}

type CreateProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	ImageURL    string
	Price       string
	PromoPrice  *string
	PromoDays   string
	SortOrder   int
	Groups      []CreateOptionGroupInput
}

// CreateProduct inserts the product with its full option tree in one
// transaction.
func (r *Repo) CreateProduct(ctx context.Context, in CreateProductInput) (catalog.Product, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return catalog.Product{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var p catalog.Product
	err = tx.QueryRow(ctx, `
		INSERT INTO products (category_id, name, description, image_url, price, promo_price, promo_days, sort_order, is_available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,true)
		RETURNING id, category_id, name, COALESCE(description,''), COALESCE(image_url,''),
		          price, promo_price, COALESCE(promo_days,''), is_available, sort_order, created_at, updated_at
	`, in.CategoryID, in.Name, in.Description, in.ImageURL, in.Price, in.PromoPrice, in.PromoDays, in.SortOrder).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL,
		&p.Price, &p.PromoPrice, &p.PromoDays, &p.IsAvailable, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return catalog.Product{}, err
	}

	if err := insertGroups(ctx, tx, p.ID, in.Groups); err != nil {
		return catalog.Product{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// ReplaceGroups swaps the product's whole option tree in one transaction.
// Groups carry no independent identity outside their product, so a full
// replace is simpler than diffing.
func (r *Repo) ReplaceGroups(ctx context.Context, productID int64, groups []CreateOptionGroupInput) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pricing.ErrProductNotFound
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM option_items
		WHERE group_id IN (SELECT id FROM option_groups WHERE product_id = $1)
	`, productID)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM option_groups WHERE product_id = $1`, productID); err != nil {
		return err
	}

	if err := insertGroups(ctx, tx, productID, groups); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertGroups(ctx context.Context, tx pgx.Tx, productID int64, groups []CreateOptionGroupInput) error {
	for _, g := range groups {
		var groupID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO option_groups (product_id, title, min_select, max_select, charge_mode, sort_order, is_available)
			VALUES ($1,$2,$3,$4,$5,$6,true)
			RETURNING id
		`, productID, g.Title, g.MinSelect, g.MaxSelect, g.ChargeMode, g.SortOrder).Scan(&groupID)
		if err != nil {
			return errors.Wrap(err, "option group insert")
		}
		for _, it := range g.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO option_items (group_id, name, description, image_url, price, sort_order, is_available)
				VALUES ($1,$2,$3,$4,$5,$6,$7)
			`, groupID, it.Name, it.Description, it.ImageURL, it.Price, it.SortOrder, it.IsAvailable)
			if err != nil {
				return errors.Wrap(err, "option item insert")
			}
		}
	}
	return nil
}

// UpdateProduct patches the given fields, leaving the rest untouched.
func (r *Repo) UpdateProduct(ctx context.Context, id int64, name, description, price, promoPrice, promoDays *string, isAvailable *bool, sortOrder *int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET
		  name = COALESCE($2, name),
		  description = COALESCE($3, description),
		  price = COALESCE($4::numeric, price),
		  promo_price = COALESCE($5::numeric, promo_price),
		  promo_days = COALESCE($6, promo_days),
		  is_available = COALESCE($7, is_available),
		  sort_order = COALESCE($8, sort_order),
		  updated_at = now()
		WHERE id = $1
	`, id, name, description, price, promoPrice, promoDays, isAvailable, sortOrder)
	return err
}

// SetProductAvailability toggles the soft-disable flag.
func (r *Repo) SetProductAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET is_available = $2, updated_at = now() WHERE id = $1
	`, id, available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pricing.ErrProductNotFound
	}
	return nil
}
