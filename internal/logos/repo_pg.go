package logos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Variant names and documents are
// stored as JSONB arrays.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, user_id, company_name, tagline, industry, industry_name, color_primary, color_secondary, style, has_image, variants, svgs, created_at`

func (r *PGRepo) Create(ctx context.Context, set LogoSet) error {
	const query = `
INSERT INTO logo_sets (
    id,
    user_id,
    company_name,
    tagline,
    industry,
    industry_name,
    color_primary,
    color_secondary,
    style,
    has_image,
    variants,
    svgs,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	variants, err := json.Marshal(set.Variants)
	if err != nil {
		return fmt.Errorf("marshal variants: %w", err)
	}
	svgs, err := json.Marshal(set.SVGs)
	if err != nil {
		return fmt.Errorf("marshal svgs: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		set.ID,
		set.UserID,
		set.CompanyName,
		set.Tagline,
		set.Industry,
		set.IndustryName,
		set.ColorPrimary,
		set.ColorSecondary,
		set.Style,
		set.HasImage,
		variants,
		svgs,
		set.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (LogoSet, error) {
	query := `
SELECT ` + selectColumns + `
FROM logo_sets
WHERE user_id = $1 AND id = $2
LIMIT 1`
	set, err := scanSet(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LogoSet{}, ErrNotFound
		}
		return LogoSet{}, err
	}
	return set, nil
}

// ListByUser lists sets ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]LogoSet, error) {
	limit, offset = clampPage(limit, offset)
	query := `
SELECT ` + selectColumns + `
FROM logo_sets
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LogoSet{}
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM logo_sets WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSet(row rowScanner) (LogoSet, error) {
	var set LogoSet
	var variants, svgs []byte
	if err := row.Scan(
		&set.ID,
		&set.UserID,
		&set.CompanyName,
		&set.Tagline,
		&set.Industry,
		&set.IndustryName,
		&set.ColorPrimary,
		&set.ColorSecondary,
		&set.Style,
		&set.HasImage,
		&variants,
		&svgs,
		&set.CreatedAt,
	); err != nil {
		return LogoSet{}, err
	}
	if err := json.Unmarshal(variants, &set.Variants); err != nil {
		return LogoSet{}, fmt.Errorf("decode variants: %w", err)
	}
	if err := json.Unmarshal(svgs, &set.SVGs); err != nil {
		return LogoSet{}, fmt.Errorf("decode svgs: %w", err)
	}
	return set, nil
}

var _ Repo = (*PGRepo)(nil)
