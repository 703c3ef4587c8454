package services

import (
	"context"
	"database/sql"

	"dompet-api/models"
)

type CategoryService struct {
	db *sql.DB
}

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

const categoryColumns = "id, user_id, name, type, icon, created_at, updated_at"

func scanCategory(row *sql.Row) (*models.Category, error) {
	var c models.Category
	var icon sql.NullString
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Icon = icon.String
	return &c, nil
}

func (s *CategoryService) Create(ctx context.Context, userID string, req *models.CreateCategoryRequest) (*models.Category, error) {
	return scanCategory(s.db.QueryRowContext(ctx, `
		INSERT INTO categories (user_id, name, type, icon)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING `+categoryColumns,
		userID, req.Name, req.Type, req.Icon))
}

func (s *CategoryService) Get(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	category, err := scanCategory(s.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1 AND user_id = $2",
		categoryID, userID))
	if err == sql.ErrNoRows {
		return nil, NotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 ORDER BY name",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		var icon sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Icon = icon.String
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	existing, err := s.Get(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}
	ctype := existing.Type
	if req.Type != nil {
		ctype = *req.Type
	}
	icon := existing.Icon
	if req.Icon != nil {
		icon = *req.Icon
	}

	return scanCategory(s.db.QueryRowContext(ctx, `
		UPDATE categories SET name = $1, type = $2, icon = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING `+categoryColumns,
		name, ctype, icon, categoryID, userID))
}

func (s *CategoryService) Delete(ctx context.Context, userID, categoryID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE id = $1 AND user_id = $2",
		categoryID, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NotFound("Category not found")
	}
	return nil
}
