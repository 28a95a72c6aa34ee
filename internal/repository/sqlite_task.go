package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"focuswave/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, description, tag, priority, status, due_date, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Tag,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.OrderIndex,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	query := `SELECT id, user_id, title, description, tag, priority, status, due_date, order_index, created_at, updated_at
		FROM tasks WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT id, user_id, title, description, tag, priority, status, due_date, order_index, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY order_index, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, tag = ?, priority = ?, status = ?, due_date = ?, order_index = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.Tag,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.OrderIndex,
		t.UpdatedAt.Format(time.RFC3339),
		t.UserID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRowAffected(res, "task")
}

// Reorder rewrites order_index to match the position of each id in
// orderedIDs. Ids not owned by the user are ignored by the WHERE clause.
func (r *SQLiteTaskRepo) Reorder(ctx context.Context, userID string, orderedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting reorder transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET order_index = ?, updated_at = ? WHERE user_id = ? AND id = ?`,
			i, now, userID, id,
		); err != nil {
			return fmt.Errorf("reordering task %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteTaskRepo) CreatedCountByDay(ctx context.Context, userID string, since time.Time) (map[string]int, error) {
	query := `SELECT date(created_at), COUNT(*)
		FROM tasks
		WHERE user_id = ? AND created_at >= ?
		GROUP BY date(created_at)`
	return r.countByDay(ctx, query, userID, since, "created tasks")
}

func (r *SQLiteTaskRepo) CompletedCountByDay(ctx context.Context, userID string, since time.Time) (map[string]int, error) {
	query := `SELECT date(updated_at), COUNT(*)
		FROM tasks
		WHERE user_id = ? AND status = 'completed' AND updated_at >= ?
		GROUP BY date(updated_at)`
	return r.countByDay(ctx, query, userID, since, "completed tasks")
}

func (r *SQLiteTaskRepo) countByDay(ctx context.Context, query, userID string, since time.Time, what string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("counting %s by day: %w", what, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", what, err)
		}
		out[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s counts: %w", what, err)
	}
	return out, nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var priority, status string
	var dueDate sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Tag,
		&priority, &status, &dueDate, &t.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, priority, status, dueDate, createdAtStr, updatedAtStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var priority, status string
		var dueDate sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Tag,
			&priority, &status, &dueDate, &t.OrderIndex, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, parseErr := r.populateTask(&t, priority, status, dueDate, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) populateTask(t *domain.Task, priority, status string, dueDate sql.NullString, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.Priority = domain.TaskPriority(priority)
	t.Status = domain.TaskStatus(status)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}

// requireRowAffected maps a zero-row write to ErrNotFound.
func requireRowAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
