package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. The goal and
// activity sequences are stored as JSON columns: the document is the unit
// of ownership, so normalizing activities into their own table would buy
// nothing but join bookkeeping.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, rec *domain.PlanRecord) error {
	goalsJSON, activitiesJSON, err := marshalPlanColumns(&rec.Plan)
	if err != nil {
		return err
	}

	query := `INSERT INTO lesson_plans (id, title, description, subject, goals_json, activities_json, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Plan.Title,
		rec.Plan.Description,
		rec.Plan.Subject,
		goalsJSON,
		activitiesJSON,
		rec.Plan.Notes,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting lesson plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	query := `SELECT id, title, description, subject, goals_json, activities_json, notes, created_at, updated_at
		FROM lesson_plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lesson plan not found")
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.PlanRecord, error) {
	query := `SELECT id, title, description, subject, goals_json, activities_json, notes, created_at, updated_at
		FROM lesson_plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lesson plans: %w", err)
	}
	defer rows.Close()

	var recs []*domain.PlanRecord
	for rows.Next() {
		rec, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lesson plans: %w", err)
	}
	return recs, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, rec *domain.PlanRecord) error {
	goalsJSON, activitiesJSON, err := marshalPlanColumns(&rec.Plan)
	if err != nil {
		return err
	}

	query := `UPDATE lesson_plans SET title = ?, description = ?, subject = ?, goals_json = ?, activities_json = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		rec.Plan.Title,
		rec.Plan.Description,
		rec.Plan.Subject,
		goalsJSON,
		activitiesJSON,
		rec.Plan.Notes,
		rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lesson plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM lesson_plans WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting lesson plan: %w", err)
	}
	return nil
}

func marshalPlanColumns(plan *domain.LessonPlan) (goalsJSON, activitiesJSON string, err error) {
	goals := plan.OverarchingGoalsStandards
	if goals == nil {
		goals = []string{}
	}
	g, err := json.Marshal(goals)
	if err != nil {
		return "", "", fmt.Errorf("marshaling goals: %w", err)
	}

	activities := plan.Activities
	if activities == nil {
		activities = []domain.Activity{}
	}
	a, err := json.Marshal(activities)
	if err != nil {
		return "", "", fmt.Errorf("marshaling activities: %w", err)
	}

	return string(g), string(a), nil
}

// scanPlan scans one row; scan abstracts over *sql.Row and *sql.Rows.
func scanPlan(scan func(dest ...any) error) (*domain.PlanRecord, error) {
	var rec domain.PlanRecord
	var goalsJSON, activitiesJSON, createdAtStr, updatedAtStr string

	err := scan(
		&rec.ID, &rec.Plan.Title, &rec.Plan.Description, &rec.Plan.Subject,
		&goalsJSON, &activitiesJSON, &rec.Plan.Notes,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning lesson plan: %w", err)
	}

	if err := json.Unmarshal([]byte(goalsJSON), &rec.Plan.OverarchingGoalsStandards); err != nil {
		return nil, fmt.Errorf("parsing goals_json: %w", err)
	}
	if err := json.Unmarshal([]byte(activitiesJSON), &rec.Plan.Activities); err != nil {
		return nil, fmt.Errorf("parsing activities_json: %w", err)
	}

	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &rec, nil
}
