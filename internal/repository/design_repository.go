package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interior-market/internal/domain"
)

// DesignFilter captures catalog browsing parameters.
type DesignFilter struct {
	Style           *string
	RoomType        *string
	Budget          *string
	DesignerID      *string
	Tags            []string
	Status          *domain.DesignStatus
	ExcludeArchived bool
	Limit           int
}

// DesignRepository encapsulates design template persistence.
type DesignRepository interface {
	Create(ctx context.Context, design *domain.Design) error
	Update(ctx context.Context, design *domain.Design) error
	GetByID(ctx context.Context, id string) (*domain.Design, error)
	ListWithFilter(ctx context.Context, filter DesignFilter) ([]domain.Design, error)
	IncrementViews(ctx context.Context, id string) error
	AddLike(ctx context.Context, designID, userID string) (bool, error)
	RemoveLike(ctx context.Context, designID, userID string) (bool, error)
	HasLiked(ctx context.Context, designID, userID string) (bool, error)
	CountLikes(ctx context.Context, designID string) (int64, error)
	AddComment(ctx context.Context, comment *domain.DesignComment) error
	ListComments(ctx context.Context, designID string) ([]domain.DesignComment, error)
}

type designRepository struct {
	pool *pgxpool.Pool
}

// NewDesignRepository instantiates repository.
func NewDesignRepository(pool *pgxpool.Pool) DesignRepository {
	return &designRepository{pool: pool}
}

const designColumns = `id, title, description, designer_id, style, room_type, images, features,
        materials, dimensions, estimated_cost, budget, timeline_weeks, warranty_years,
        specifications, tags, status, views, created_at, updated_at`

func (r *designRepository) Create(ctx context.Context, design *domain.Design) error {
	const query = `
        INSERT INTO designs (title, description, designer_id, style, room_type, images, features,
            materials, dimensions, estimated_cost, budget, timeline_weeks, warranty_years,
            specifications, tags, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		design.Title,
		design.Description,
		design.DesignerID,
		design.Style,
		design.RoomType,
		design.Images,
		design.Features,
		design.Materials,
		design.Dimensions,
		design.EstimatedCost,
		design.Budget,
		design.TimelineWeeks,
		design.WarrantyYears,
		design.Specifications,
		design.Tags,
		design.Status,
	).Scan(&design.ID, &design.CreatedAt, &design.UpdatedAt)
}

func (r *designRepository) Update(ctx context.Context, design *domain.Design) error {
	const query = `
        UPDATE designs SET title=$1, description=$2, style=$3, room_type=$4, images=$5,
            features=$6, materials=$7, dimensions=$8, estimated_cost=$9, budget=$10,
            timeline_weeks=$11, warranty_years=$12, specifications=$13, tags=$14, status=$15,
            updated_at=NOW()
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		design.Title,
		design.Description,
		design.Style,
		design.RoomType,
		design.Images,
		design.Features,
		design.Materials,
		design.Dimensions,
		design.EstimatedCost,
		design.Budget,
		design.TimelineWeeks,
		design.WarrantyYears,
		design.Specifications,
		design.Tags,
		design.Status,
		design.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *designRepository) GetByID(ctx context.Context, id string) (*domain.Design, error) {
	const query = `SELECT ` + designColumns + ` FROM designs WHERE id=$1`
	var design domain.Design
	if err := scanDesign(r.pool.QueryRow(ctx, query, id), &design); err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *designRepository) ListWithFilter(ctx context.Context, filter DesignFilter) ([]domain.Design, error) {
	base := `SELECT ` + designColumns + ` FROM designs`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Style != nil {
		args = append(args, *filter.Style)
		clauses = append(clauses, fmt.Sprintf("style=$%d", len(args)))
	}
	if filter.RoomType != nil {
		args = append(args, *filter.RoomType)
		clauses = append(clauses, fmt.Sprintf("room_type=$%d", len(args)))
	}
	if filter.Budget != nil {
		args = append(args, *filter.Budget)
		clauses = append(clauses, fmt.Sprintf("budget=$%d", len(args)))
	}
	if filter.DesignerID != nil {
		args = append(args, *filter.DesignerID)
		clauses = append(clauses, fmt.Sprintf("designer_id=$%d", len(args)))
	}
	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		clauses = append(clauses, fmt.Sprintf("tags && $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.ExcludeArchived {
		args = append(args, domain.DesignStatusArchived)
		clauses = append(clauses, fmt.Sprintf("status <> $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d",
		base, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Design
	for rows.Next() {
		var design domain.Design
		if err := scanDesign(rows, &design); err != nil {
			return nil, err
		}
		result = append(result, design)
	}
	return result, rows.Err()
}

func (r *designRepository) IncrementViews(ctx context.Context, id string) error {
	const query = `UPDATE designs SET views = views + 1 WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// AddLike inserts into the like set; re-liking is a no-op.
func (r *designRepository) AddLike(ctx context.Context, designID, userID string) (bool, error) {
	const query = `
        INSERT INTO design_likes (design_id, user_id)
        VALUES ($1,$2)
        ON CONFLICT (design_id, user_id) DO NOTHING`
	cmd, err := r.pool.Exec(ctx, query, designID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// RemoveLike deletes from the like set; unliking a non-liker is a no-op.
func (r *designRepository) RemoveLike(ctx context.Context, designID, userID string) (bool, error) {
	const query = `DELETE FROM design_likes WHERE design_id=$1 AND user_id=$2`
	cmd, err := r.pool.Exec(ctx, query, designID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *designRepository) HasLiked(ctx context.Context, designID, userID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM design_likes WHERE design_id=$1 AND user_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, designID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *designRepository) CountLikes(ctx context.Context, designID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM design_likes WHERE design_id=$1`
	var count int64
	if err := r.pool.QueryRow(ctx, query, designID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *designRepository) AddComment(ctx context.Context, comment *domain.DesignComment) error {
	const query = `
        INSERT INTO design_comments (design_id, user_id, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		comment.DesignID,
		comment.UserID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *designRepository) ListComments(ctx context.Context, designID string) ([]domain.DesignComment, error) {
	const query = `
        SELECT id, design_id, user_id, content, created_at
        FROM design_comments WHERE design_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, designID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DesignComment
	for rows.Next() {
		var comment domain.DesignComment
		if err := rows.Scan(
			&comment.ID,
			&comment.DesignID,
			&comment.UserID,
			&comment.Content,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}

func scanDesign(row pgx.Row, design *domain.Design) error {
	return row.Scan(
		&design.ID,
		&design.Title,
		&design.Description,
		&design.DesignerID,
		&design.Style,
		&design.RoomType,
		&design.Images,
		&design.Features,
		&design.Materials,
		&design.Dimensions,
		&design.EstimatedCost,
		&design.Budget,
		&design.TimelineWeeks,
		&design.WarrantyYears,
		&design.Specifications,
		&design.Tags,
		&design.Status,
		&design.Views,
		&design.CreatedAt,
		&design.UpdatedAt,
	)
}
