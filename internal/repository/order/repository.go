package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/repository/pgerr"
)

const (
	ordersTable  = "orders"
	entriesTable = "time_entries"
	usagesTable  = "part_usages"
)

var orderColumns = []string{
	"id", "code", "status", "priority", "type", "description",
	"resolution_notes", "internal_notes", "scheduled_date", "start_time", "end_time",
	"client_signature", "client_id", "equipment_id", "technician_id", "created_at",
}

var entryColumns = []string{
	"id", "order_id", "start_time", "end_time", "duration_minutes", "description", "technician_id",
}

var usageColumns = []string{
	"id", "order_id", "catalog_part_id", "name", "reference", "quantity", "unit_price_cents",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewOrderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) CreateOrder(ctx context.Context, ord *model.Order) error {
	if ord.ID == uuid.Nil {
		ord.ID = uuid.New()
	}

	q := r.sb.
		Insert(ordersTable).
		Columns(orderColumns...).
		Values(
			ord.ID, ord.Code, ord.Status, ord.Priority, ord.Type, ord.Description,
			ord.ResolutionNotes, ord.InternalNotes, ord.ScheduledDate, ord.StartTime, ord.EndTime,
			ord.ClientSignature, ord.ClientID, ord.EquipmentID, ord.TechnicianID, ord.CreatedAt,
		)

	return r.exec(ctx, q, model.ErrOrderNotFound, false)
}

func (r *repository) UpdateOrder(ctx context.Context, id uuid.UUID, upd model.OrderUpdate) error {
	set := sq.Eq{}

	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ResolutionNotes != nil {
		set["resolution_notes"] = *upd.ResolutionNotes
	}
	if upd.InternalNotes != nil {
		set["internal_notes"] = *upd.InternalNotes
	}
	if upd.ScheduledDate != nil {
		set["scheduled_date"] = *upd.ScheduledDate
	}
	if upd.StartTime != nil {
		set["start_time"] = *upd.StartTime
	}
	if upd.EndTime != nil {
		set["end_time"] = *upd.EndTime
	}
	if upd.ClientSignature != nil {
		set["client_signature"] = *upd.ClientSignature
	}
	if upd.TechnicianID != nil {
		set["technician_id"] = *upd.TechnicianID
	}

	if len(set) == 0 {
		return nil
	}

	q := r.sb.
		Update(ordersTable).
		SetMap(set).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, model.ErrOrderNotFound, true)
}

func (r *repository) OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	q := r.sb.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var ord model.Order
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&ord.ID,
		&ord.Code,
		&ord.Status,
		&ord.Priority,
		&ord.Type,
		&ord.Description,
		&ord.ResolutionNotes,
		&ord.InternalNotes,
		&ord.ScheduledDate,
		&ord.StartTime,
		&ord.EndTime,
		&ord.ClientSignature,
		&ord.ClientID,
		&ord.EquipmentID,
		&ord.TechnicianID,
		&ord.CreatedAt,
	)
	if err != nil {
		return nil, pgerr.Map(err, model.ErrOrderNotFound)
	}

	return &ord, nil
}

func (r *repository) ListTimeEntries(ctx context.Context, orderID uuid.UUID) ([]*model.TimeEntry, error) {
	q := r.sb.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("start_time")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.TimeEntry, error) {
		var e model.TimeEntry
		err := row.Scan(&e.ID, &e.OrderID, &e.Start, &e.End, &e.DurationMinutes, &e.Description, &e.TechnicianID)
		return &e, err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error {
	q := r.sb.
		Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			entry.ID, entry.OrderID, entry.Start, entry.End,
			entry.DurationMinutes, entry.Description, entry.TechnicianID,
		)

	return r.exec(ctx, q, model.ErrOrderNotFound, false)
}

func (r *repository) UpdateTimeEntry(ctx context.Context, id uuid.UUID, upd model.TimeEntryUpdate) error {
	set := sq.Eq{}

	if upd.End != nil {
		set["end_time"] = *upd.End
	}
	if upd.DurationMinutes != nil {
		set["duration_minutes"] = *upd.DurationMinutes
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Reopen {
		set["end_time"] = nil
		set["duration_minutes"] = nil
	}

	if len(set) == 0 {
		return nil
	}

	q := r.sb.
		Update(entriesTable).
		SetMap(set).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, model.ErrTimeEntryNotFound, true)
}

func (r *repository) DeleteTimeEntry(ctx context.Context, id uuid.UUID) error {
	q := r.sb.
		Delete(entriesTable).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, model.ErrTimeEntryNotFound, true)
}

func (r *repository) ListPartUsages(ctx context.Context, orderID uuid.UUID) ([]*model.PartUsage, error) {
	q := r.sb.
		Select(usageColumns...).
		From(usagesTable).
		Where(sq.Eq{"order_id": orderID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	usages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.PartUsage, error) {
		var u model.PartUsage
		err := row.Scan(&u.ID, &u.OrderID, &u.CatalogPartID, &u.Name, &u.Reference, &u.Quantity, &u.UnitPriceCents)
		return &u, err
	})
	if err != nil {
		return nil, err
	}
	return usages, nil
}

func (r *repository) CreatePartUsage(ctx context.Context, usage *model.PartUsage) error {
	q := r.sb.
		Insert(usagesTable).
		Columns(usageColumns...).
		Values(
			usage.ID, usage.OrderID, usage.CatalogPartID, usage.Name,
			usage.Reference, usage.Quantity, usage.UnitPriceCents,
		)

	return r.exec(ctx, q, model.ErrOrderNotFound, false)
}

func (r *repository) DeletePartUsage(ctx context.Context, id uuid.UUID) error {
	q := r.sb.
		Delete(usagesTable).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, model.ErrPartUsageNotFound, true)
}

// exec runs a write. With mustAffect set, zero affected rows means notFound.
func (r *repository) exec(ctx context.Context, q sq.Sqlizer, notFound error, mustAffect bool) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return pgerr.Map(err, notFound)
	}
	if mustAffect && ct.RowsAffected() == 0 {
		return notFound
	}

	return nil
}
