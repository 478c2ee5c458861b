package repository

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/remote"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

// EmployeeRepository serves the remote source contract from Postgres.
// Driver failures surface as NetworkError; missing rows as HTTPError 404.
type EmployeeRepository interface {
	remote.Source
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) FetchAll(ctx context.Context) ([]remote.RawRecord, error) {
	const query = `
        SELECT id, name, email, role, department, salary, created_at
        FROM employees ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, &apperrors.NetworkError{Op: "fetch_all", Err: err}
	}
	defer rows.Close()

	result := []remote.RawRecord{}
	for rows.Next() {
		var (
			id        int64
			rec       remote.RawRecord
			salary    float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &rec.Name, &rec.Email, &rec.Role, &rec.Department, &salary, &createdAt); err != nil {
			return nil, &apperrors.NetworkError{Op: "fetch_all", Err: err}
		}
		rec.ID = strconv.FormatInt(id, 10)
		rec.Salary = &salary
		rec.CreatedAt = &createdAt
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.NetworkError{Op: "fetch_all", Err: err}
	}
	return result, nil
}

func (r *employeeRepository) Create(ctx context.Context, fields domain.EmployeeFields) (remote.RawRecord, error) {
	const query = `
        INSERT INTO employees (name, email, role, department, salary)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	var (
		id        int64
		createdAt time.Time
	)
	if err := r.pool.QueryRow(ctx, query,
		fields.Name,
		fields.Email,
		fields.Role,
		fields.Department,
		fields.Salary,
	).Scan(&id, &createdAt); err != nil {
		return remote.RawRecord{}, &apperrors.NetworkError{Op: "create", Err: err}
	}
	fields.CreatedAt = createdAt
	return remote.FromFields(strconv.FormatInt(id, 10), fields), nil
}

func (r *employeeRepository) Delete(ctx context.Context, remoteID string) error {
	id, err := strconv.ParseInt(remoteID, 10, 64)
	if err != nil {
		return &apperrors.HTTPError{Op: "delete", StatusCode: http.StatusNotFound}
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return &apperrors.NetworkError{Op: "delete", Err: err}
	}
	if cmd.RowsAffected() == 0 {
		return &apperrors.HTTPError{Op: "delete", StatusCode: http.StatusNotFound}
	}
	return nil
}
