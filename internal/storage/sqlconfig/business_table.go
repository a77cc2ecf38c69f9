package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Business represents a businesses row.
type Business struct {
	ID                 uuid.UUID        `db:"id"`
	UserID             uuid.UUID        `db:"user_id"`
	Name               string           `db:"name"`
	Type               string           `db:"type"`
	Description        null.Val[string] `db:"description"`
	Location           null.Val[string] `db:"location"`
	Phone              null.Val[string] `db:"phone"`
	Email              null.Val[string] `db:"email"`
	RegistrationNumber null.Val[string] `db:"registration_number"`
	TaxID              null.Val[string] `db:"tax_id"`
	IsActive           bool             `db:"is_active"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

// BusinessCreate is the input for registering a business. Empty optional fields are stored as NULL.
type BusinessCreate struct {
	UserID             uuid.UUID
	Name               string
	Type               string
	Description        string
	Location           string
	Phone              string
	Email              string
	RegistrationNumber string
	TaxID              string
}

type IBusinessTable interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Business, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*Business, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*Business, error)
	Insert(ctx context.Context, create *BusinessCreate) (*Business, error)
}

var businessColumns = []any{
	"id", "user_id", "name", "type", "description", "location", "phone", "email",
	"registration_number", "tax_id", "is_active", "created_at", "updated_at",
}

// BusinessesTable provides access to the businesses table.
type BusinessesTable struct {
	exec bob.Executor
}

var _ IBusinessTable = (*BusinessesTable)(nil)

func NewBusinessesTable(exec bob.Executor) *BusinessesTable {
	return &BusinessesTable{exec: exec}
}

// FindByIDForUpdate retrieves a business and locks its row until the surrounding transaction ends.
func (t *BusinessesTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Business, error) {
	q := psql.Select(
		sm.Columns(businessColumns...),
		sm.From("businesses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindActiveByUser returns the most recently created active business owned by userID.
func (t *BusinessesTable) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*Business, error) {
	q := psql.Select(
		sm.Columns(businessColumns...),
		sm.From("businesses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListActiveByUser returns every active business owned by userID, newest first.
func (t *BusinessesTable) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*Business, error) {
	q := psql.Select(
		sm.Columns(businessColumns...),
		sm.From("businesses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Business]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert registers a business and returns the stored row.
func (t *BusinessesTable) Insert(ctx context.Context, create *BusinessCreate) (*Business, error) {
	q := psql.Insert(
		im.Into("businesses",
			"user_id", "name", "type", "description", "location", "phone", "email",
			"registration_number", "tax_id",
		),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(create.Type),
			psql.Arg(optional(create.Description)),
			psql.Arg(optional(create.Location)),
			psql.Arg(optional(create.Phone)),
			psql.Arg(optional(create.Email)),
			psql.Arg(optional(create.RegistrationNumber)),
			psql.Arg(optional(create.TaxID)),
		),
		im.Returning(businessColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Business]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// optional maps an empty string to NULL.
func optional(s string) null.Val[string] {
	return null.FromCond(s, s != "")
}
