package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
	"github.com/evgeniy-krivenko/notebook/internal/repository/converter"
	"github.com/evgeniy-krivenko/notebook/internal/repository/rows"
	"github.com/evgeniy-krivenko/notebook/pkg/logger/slogx"
)

const categoryReturning = "RETURNING id, owner_id, name, color, created_at, updated_at"

var categoryColumns = []string{
	"c.id",
	"c.owner_id",
	"c.name",
	"c.color",
	"c.created_at",
	"c.updated_at",
}

func (r *Repo) CreateCategory(ctx context.Context, c entity.Category) (entity.Category, error) {
	q := psql.Insert("categories").
		Columns("id", "owner_id", "name", "color").
		Values(c.ID, c.OwnerID, c.Name, string(c.Color)).
		Suffix(categoryReturning)

	row, err := r.collectCategory(ctx, q)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Category{}, entity.ErrDuplicateName
		}
		return entity.Category{}, fmt.Errorf("create category: %v", err)
	}

	slogx.Debug(ctx, "success to create category", slogx.UserId(c.OwnerID), slogx.CategoryId(c.ID))

	return converter.ConvertCategoryToEntity(row), nil
}

func (r *Repo) GetCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error) {
	return r.getCategory(ctx, ownerID, categoryID, "")
}

// LockCategory reads the category and holds a row lock on it until the
// surrounding transaction ends.
func (r *Repo) LockCategory(ctx context.Context, ownerID, categoryID string) (entity.Category, error) {
	return r.getCategory(ctx, ownerID, categoryID, "FOR UPDATE")
}

func (r *Repo) getCategory(ctx context.Context, ownerID, categoryID, suffix string) (entity.Category, error) {
	q := psql.Select(categoryColumns...).
		From("categories c").
		Where(sq.Eq{"c.id": categoryID, "c.owner_id": ownerID})

	if suffix != "" {
		q = q.Suffix(suffix)
	}

	row, err := r.collectCategory(ctx, q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Category{}, entity.ErrNotFound
		}
		return entity.Category{}, fmt.Errorf("get category: %v", err)
	}

	return converter.ConvertCategoryToEntity(row), nil
}

func (r *Repo) ListCategories(ctx context.Context, ownerID string) ([]entity.Category, error) {
	q := psql.Select(categoryColumns...).
		Column(`(SELECT count(*) FROM notes n
			WHERE n.category_id = c.id AND n.owner_id = c.owner_id AND n.deleted_at IS NULL) AS note_count`).
		From("categories c").
		Where(sq.Eq{"c.owner_id": ownerID}).
		OrderBy("c.name ASC", "c.id ASC")

	rs, err := r.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list categories: %v", err)
	}

	categories, err := pgx.CollectRows(rs, pgx.RowToStructByName[rows.Category])
	if err != nil {
		return nil, fmt.Errorf("collect categories: %v", err)
	}

	return converter.ConvertCategoriesToEntity(categories), nil
}

func (r *Repo) RenameCategory(ctx context.Context, ownerID, categoryID, name string) (entity.Category, error) {
	q := psql.Update("categories").
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": categoryID, "owner_id": ownerID}).
		Suffix(categoryReturning)

	row, err := r.collectCategory(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return entity.Category{}, entity.ErrNotFound
		case isUniqueViolation(err):
			return entity.Category{}, entity.ErrDuplicateName
		}
		return entity.Category{}, fmt.Errorf("rename category: %v", err)
	}

	return converter.ConvertCategoryToEntity(row), nil
}

func (r *Repo) DeleteCategory(ctx context.Context, ownerID, categoryID string) error {
	q := psql.Delete("categories").
		Where(sq.Eq{"id": categoryID, "owner_id": ownerID})

	n, err := r.exec(ctx, q)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %v", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repo) collectCategory(ctx context.Context, q sq.Sqlizer) (rows.Category, error) {
	rs, err := r.query(ctx, q)
	if err != nil {
		return rows.Category{}, err
	}

	return pgx.CollectOneRow(rs, pgx.RowToStructByNameLax[rows.Category])
}
