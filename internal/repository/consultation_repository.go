package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interior-market/internal/domain"
)

// ConsultationFilter captures consultation listing parameters.
type ConsultationFilter struct {
	RequesterID     *string
	DesignerID      *string
	Status          *domain.ConsultationStatus
	ExcludeStatuses []domain.ConsultationStatus
	DateFrom        *time.Time
	Limit           int
	OrderDateAsc    bool
}

// ConsultationRepository encapsulates consultation persistence.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *domain.Consultation) error
	Update(ctx context.Context, consultation *domain.Consultation) error
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	ListWithFilter(ctx context.Context, filter ConsultationFilter) ([]domain.Consultation, error)
	AddNote(ctx context.Context, note *domain.ConsultationNote) error
	ListNotes(ctx context.Context, consultationID string) ([]domain.ConsultationNote, error)
}

type consultationRepository struct {
	pool *pgxpool.Pool
}

// NewConsultationRepository instantiates repository.
func NewConsultationRepository(pool *pgxpool.Pool) ConsultationRepository {
	return &consultationRepository{pool: pool}
}

const consultationColumns = `id, requester_id, designer_id, project_id, name, email, phone,
        project_type, property_type, budget, date, time_slot, message, status, created_at, updated_at`

func (r *consultationRepository) Create(ctx context.Context, consultation *domain.Consultation) error {
	const query = `
        INSERT INTO consultations (requester_id, designer_id, project_id, name, email, phone,
            project_type, property_type, budget, date, time_slot, message, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		consultation.RequesterID,
		consultation.DesignerID,
		consultation.ProjectID,
		consultation.Name,
		consultation.Email,
		consultation.Phone,
		consultation.ProjectType,
		consultation.PropertyType,
		consultation.Budget,
		consultation.Date,
		consultation.TimeSlot,
		consultation.Message,
		consultation.Status,
	).Scan(&consultation.ID, &consultation.CreatedAt, &consultation.UpdatedAt)
}

func (r *consultationRepository) Update(ctx context.Context, consultation *domain.Consultation) error {
	const query = `
        UPDATE consultations SET designer_id=$1, project_id=$2, name=$3, email=$4, phone=$5,
            project_type=$6, property_type=$7, budget=$8, date=$9, time_slot=$10, message=$11,
            status=$12, updated_at=NOW()
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		consultation.DesignerID,
		consultation.ProjectID,
		consultation.Name,
		consultation.Email,
		consultation.Phone,
		consultation.ProjectType,
		consultation.PropertyType,
		consultation.Budget,
		consultation.Date,
		consultation.TimeSlot,
		consultation.Message,
		consultation.Status,
		consultation.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *consultationRepository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	const query = `SELECT ` + consultationColumns + ` FROM consultations WHERE id=$1`
	var consultation domain.Consultation
	if err := scanConsultation(r.pool.QueryRow(ctx, query, id), &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) ListWithFilter(ctx context.Context, filter ConsultationFilter) ([]domain.Consultation, error) {
	base := `SELECT ` + consultationColumns + ` FROM consultations`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		clauses = append(clauses, fmt.Sprintf("requester_id=$%d", len(args)))
	}
	if filter.DesignerID != nil {
		args = append(args, *filter.DesignerID)
		clauses = append(clauses, fmt.Sprintf("designer_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(filter.ExcludeStatuses) > 0 {
		placeholders := make([]string, len(filter.ExcludeStatuses))
		for i, status := range filter.ExcludeStatuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status NOT IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}

	order := "date ASC"
	if !filter.OrderDateAsc {
		order = "created_at DESC"
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT %d",
		base, strings.Join(clauses, " AND "), order, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Consultation
	for rows.Next() {
		var consultation domain.Consultation
		if err := scanConsultation(rows, &consultation); err != nil {
			return nil, err
		}
		result = append(result, consultation)
	}
	return result, rows.Err()
}

func (r *consultationRepository) AddNote(ctx context.Context, note *domain.ConsultationNote) error {
	const query = `
        INSERT INTO consultation_notes (consultation_id, author_id, text)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		note.ConsultationID,
		note.AuthorID,
		note.Text,
	).Scan(&note.ID, &note.CreatedAt)
}

func (r *consultationRepository) ListNotes(ctx context.Context, consultationID string) ([]domain.ConsultationNote, error) {
	const query = `
        SELECT id, consultation_id, author_id, text, created_at
        FROM consultation_notes WHERE consultation_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, consultationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ConsultationNote
	for rows.Next() {
		var note domain.ConsultationNote
		if err := rows.Scan(
			&note.ID,
			&note.ConsultationID,
			&note.AuthorID,
			&note.Text,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	return result, rows.Err()
}

func scanConsultation(row pgx.Row, consultation *domain.Consultation) error {
	return row.Scan(
		&consultation.ID,
		&consultation.RequesterID,
		&consultation.DesignerID,
		&consultation.ProjectID,
		&consultation.Name,
		&consultation.Email,
		&consultation.Phone,
		&consultation.ProjectType,
		&consultation.PropertyType,
		&consultation.Budget,
		&consultation.Date,
		&consultation.TimeSlot,
		&consultation.Message,
		&consultation.Status,
		&consultation.CreatedAt,
		&consultation.UpdatedAt,
	)
}
