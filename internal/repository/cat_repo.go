package repository

import (
	"context"
	"database/sql"

	"github.com/zahira986-id/Cat-Galery/internal/model"
)

const catColumns = "id, name, tag, descreption, img"

// ListCatsPage runs the count query and the data query for one page
// under a single read transaction, so totals and rows are computed
// against the same snapshot.
func (s *Store) ListCatsPage(ctx context.Context, f CatFilter, limit, offset int) ([]model.Cat, int, error) {
	where, args := f.Where()

	var cats []model.Cat
	var total int

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM cats"+where, args...).Scan(&total); err != nil {
			return err
		}

		dataArgs := append(append([]any{}, args...), limit, offset)
		rows, err := tx.QueryContext(ctx, "SELECT "+catColumns+" FROM cats"+where+" LIMIT ? OFFSET ?", dataArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			cat, err := scanCat(rows)
			if err != nil {
				return err
			}
			cats = append(cats, cat)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}

	return cats, total, nil
}

// GetCat returns the cat with the given id, or nil when absent
func (s *Store) GetCat(ctx context.Context, id int64) (*model.Cat, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+catColumns+" FROM cats WHERE id = ?", id)

	cat, err := scanCat(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCat inserts a new record and returns its store-assigned id
func (s *Store) CreateCat(ctx context.Context, in model.CatInput) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO cats (name, tag, descreption, img) VALUES (?, ?, ?, ?)",
		in.Name, in.Tag, in.Descreption, in.Img)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// UpdateCat replaces all four mutable fields of the given record.
// Returns the number of rows affected; zero for a missing id.
func (s *Store) UpdateCat(ctx context.Context, id int64, in model.CatInput) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE cats SET name = ?, tag = ?, descreption = ?, img = ? WHERE id = ?",
		in.Name, in.Tag, in.Descreption, in.Img, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// DeleteCat removes the record; deleting a missing id is a no-op
func (s *Store) DeleteCat(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cats WHERE id = ?", id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// DistinctTags returns the distinct non-null, non-empty tag values
func (s *Store) DistinctTags(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT tag FROM cats WHERE tag IS NOT NULL AND tag != ''")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCat reads one cat row, mapping NULL text columns to ""
func scanCat(row rowScanner) (model.Cat, error) {
	var cat model.Cat
	var tag, descreption, img sql.NullString

	if err := row.Scan(&cat.ID, &cat.Name, &tag, &descreption, &img); err != nil {
		return model.Cat{}, err
	}

	cat.Tag = tag.String
	cat.Descreption = descreption.String
	cat.Img = img.String
	return cat, nil
}
