package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

// StoreUser inserts a new user and returns the stored row.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	row := PgUser{}
	row.FromDomain(user)

	var inserted []PgUser
	err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().
		ScanStructsContext(ctx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("could not insert user: %w", mapError(err))
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert user returned no rows")
	}

	return inserted[0].ToDomain(), nil
}

// UserByID fetches a user by its ID. It returns nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(int64(ID)))
}

// UserByUsername fetches a user by its username. It returns nil when not found.
func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("username").Eq(username))
}

func (p *PgSQL) userBy(ctx context.Context, cond goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(cond).
		Limit(1).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UsersByIDs fetches the users among the given IDs.
func (p *PgSQL) UsersByIDs(ctx context.Context, IDs ...domain.UserID) ([]domain.User, error) {
	if len(IDs) == 0 {
		return []domain.User{}, nil
	}
	vals := make([]interface{}, 0, len(IDs))
	for _, id := range IDs {
		vals = append(vals, int64(id))
	}

	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("id").In(vals...)).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users: %w", err)
	}

	return toDomain(rows, (*PgUser).ToDomain), nil
}
