package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/baechuer/visit-service/internal/domain"
)

// CityRepo reads and provisions the city reference table:
//
//	CREATE TABLE cities (
//	  id        TEXT PRIMARY KEY,
//	  post_code CHAR(5),
//	  name      TEXT NOT NULL,
//	  position  INT  NOT NULL DEFAULT 0
//	);
type CityRepo struct {
	db *sql.DB
}

func New(db *sql.DB) *CityRepo { return &CityRepo{db: db} }

// ListCities returns the directory in position order.
func (r *CityRepo) ListCities(ctx context.Context) ([]domain.City, error) {
	query, args, err := builder().
		Select(cityColumns...).
		From(tableCities).
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		var postCode sql.NullString
		if err := rows.Scan(&c.ID, &postCode, &c.Name); err != nil {
			return nil, err
		}
		c.PostCode = postCode.String
		out = append(out, domain.NormalizeCity(c))
	}
	return out, rows.Err()
}

// ReplaceCities rewrites the table in one transaction, keeping the given order.
func (r *CityRepo) ReplaceCities(ctx context.Context, cities []domain.City) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	del, args, err := builder().Delete(tableCities).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err = tx.ExecContext(ctx, del, args...); err != nil {
		return err
	}

	if len(cities) > 0 {
		ins := builder().Insert(tableCities).Columns("id", "post_code", "name", "position")
		for i, c := range cities {
			var postCode any
			if c.HasPostCode() {
				postCode = c.PostCode
			}
			ins = ins.Values(c.ID, postCode, c.Name, i)
		}
		q, insArgs, buildErr := ins.ToSql()
		if buildErr != nil {
			err = fmt.Errorf("build insert: %w", buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, q, insArgs...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
