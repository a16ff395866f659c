package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_hub_app/internal/models"
	"github.com/SscSPs/business_hub_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, employee_name, position, department, salary, join_date, status, contact_info`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.EmployeeName,
		&m.Position,
		&m.Department,
		&m.Salary,
		&m.JoinDate,
		&m.Status,
		&m.ContactInfo,
	)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_name, position, department, salary, join_date, status, contact_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	saved, err := scanEmployee(r.db(ctx).QueryRow(ctx, query,
		m.EmployeeName, m.Position, m.Department, m.Salary, m.JoinDate, m.Status, m.ContactInfo))
	if err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	d := mapping.ToDomainEmployee(saved)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	m, err := scanEmployee(r.db(ctx).QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET employee_name = $2, position = $3, department = $4, salary = $5,
			join_date = $6, status = $7, contact_info = $8, updated_at = now()
		WHERE id = $1`

	tag, err := r.db(ctx).Exec(ctx, query,
		m.EmployeeID, m.EmployeeName, m.Position, m.Department, m.Salary, m.JoinDate, m.Status, m.ContactInfo)
	if err != nil {
		return fmt.Errorf("failed to update employee %d: %w", m.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) ReplaceEmployees(ctx context.Context, employees []domain.Employee) error {
	q := r.db(ctx)
	if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	batch := &pgx.Batch{}
	for _, e := range employees {
		m := mapping.ToModelEmployee(e)
		batch.Queue(`INSERT INTO employees (`+employeeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			m.EmployeeID, m.EmployeeName, m.Position, m.Department, m.Salary, m.JoinDate, m.Status, m.ContactInfo)
	}
	if err := sendInserts(ctx, q, batch); err != nil {
		return fmt.Errorf("failed to insert employees: %w", err)
	}
	return resetSequence(ctx, q, "employees")
}
