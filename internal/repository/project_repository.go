package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/interior-market/internal/domain"
)

// ProjectRepository encapsulates project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Project, error)
	ListByMember(ctx context.Context, userID string) ([]domain.Project, error)
	AddNote(ctx context.Context, note *domain.ProjectNote) error
	ListNotes(ctx context.Context, projectID string) ([]domain.ProjectNote, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, title, description, client_id, designer_id, consultation_id, design_ids,
        status, timeline, budget, room_details, materials, feedback, attachments, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (title, description, client_id, designer_id, consultation_id,
            design_ids, status, timeline, budget, room_details, materials, feedback, attachments)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.ClientID,
		project.DesignerID,
		project.ConsultationID,
		project.DesignIDs,
		project.Status,
		project.Timeline,
		project.Budget,
		project.RoomDetails,
		project.Materials,
		project.Feedback,
		project.Attachments,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET title=$1, description=$2, consultation_id=$3, design_ids=$4, status=$5,
            timeline=$6, budget=$7, room_details=$8, materials=$9, feedback=$10, attachments=$11,
            updated_at=NOW()
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		project.Title,
		project.Description,
		project.ConsultationID,
		project.DesignIDs,
		project.Status,
		project.Timeline,
		project.Budget,
		project.RoomDetails,
		project.Materials,
		project.Feedback,
		project.Attachments,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	var project domain.Project
	if err := scanProject(r.pool.QueryRow(ctx, query, id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects
        WHERE client_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *projectRepository) ListByMember(ctx context.Context, userID string) ([]domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects
        WHERE client_id=$1 OR designer_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *projectRepository) list(ctx context.Context, query string, arg any) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := scanProject(rows, &project); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}

func (r *projectRepository) AddNote(ctx context.Context, note *domain.ProjectNote) error {
	const query = `
        INSERT INTO project_notes (project_id, author_id, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		note.ProjectID,
		note.AuthorID,
		note.Content,
	).Scan(&note.ID, &note.CreatedAt)
}

func (r *projectRepository) ListNotes(ctx context.Context, projectID string) ([]domain.ProjectNote, error) {
	const query = `
        SELECT id, project_id, author_id, content, created_at
        FROM project_notes WHERE project_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProjectNote
	for rows.Next() {
		var note domain.ProjectNote
		if err := rows.Scan(
			&note.ID,
			&note.ProjectID,
			&note.AuthorID,
			&note.Content,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	return result, rows.Err()
}

func scanProject(row pgx.Row, project *domain.Project) error {
	return row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ClientID,
		&project.DesignerID,
		&project.ConsultationID,
		&project.DesignIDs,
		&project.Status,
		&project.Timeline,
		&project.Budget,
		&project.RoomDetails,
		&project.Materials,
		&project.Feedback,
		&project.Attachments,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
}
