package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/repository/pgerr"
)

const catalogTable = "catalog_items"

var itemColumns = []string{"id", "name", "reference", "price_cents", "stock"}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCatalogRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]*model.CatalogItem, error) {
	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From(catalogTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanItem)
}

func (r *repository) ItemByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	sqlStr, args, err := r.sb.
		Select(itemColumns...).
		From(catalogTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	it, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, pgerr.Map(err, model.ErrCatalogItemMissing)
	}
	return it, nil
}

func (r *repository) Create(ctx context.Context, item *model.CatalogItem) error {
	sqlStr, args, err := r.sb.
		Insert(catalogTable).
		Columns(itemColumns...).
		Values(item.ID, item.Name, item.Reference, item.PriceCents, item.Stock).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return pgerr.Map(err, model.ErrCatalogItemMissing)
	}
	return nil
}

// CreateBatch inserts the items that do not exist yet.
func (r *repository) CreateBatch(ctx context.Context, items []*model.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.sb.
		Insert(catalogTable).
		Columns(itemColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, it := range items {
		q = q.Values(it.ID, it.Name, it.Reference, it.PriceCents, it.Stock)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, sqlStr, args...)
	return err
}

func (r *repository) Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error) {
	set := sq.Eq{}

	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Reference != nil {
		set["reference"] = *upd.Reference
	}
	if upd.PriceCents != nil {
		set["price_cents"] = *upd.PriceCents
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}

	if len(set) == 0 {
		return r.ItemByID(ctx, id)
	}

	sqlStr, args, err := r.sb.
		Update(catalogTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, reference, price_cents, stock").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	it, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, pgerr.Map(err, model.ErrCatalogItemMissing)
	}
	return it, nil
}

// UpdateStock adds delta in a single statement. The result may be negative.
func (r *repository) UpdateStock(ctx context.Context, id string, delta int64) (int64, error) {
	sqlStr, args, err := r.sb.
		Update(catalogTable).
		Set("stock", sq.Expr("stock + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING stock").
		ToSql()
	if err != nil {
		return 0, err
	}

	var stock int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&stock); err != nil {
		return 0, pgerr.Map(err, model.ErrCatalogItemMissing)
	}
	return stock, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := r.sb.
		Delete(catalogTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrCatalogItemMissing
	}
	return nil
}

func scanItem(row pgx.CollectableRow) (*model.CatalogItem, error) {
	var it model.CatalogItem
	err := row.Scan(&it.ID, &it.Name, &it.Reference, &it.PriceCents, &it.Stock)
	return &it, err
}
