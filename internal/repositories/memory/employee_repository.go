package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
)

// EmployeeRepository stores employees in a Store.
type EmployeeRepository struct {
	store *Store
}

var _ portsrepo.EmployeeRepositoryFacade = (*EmployeeRepository)(nil)

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	var (
		employee domain.Employee
		ok       bool
	)
	r.store.read(ctx, func(st *state) {
		employee, ok = st.employees[employeeID]
	})
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &employee, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	r.store.read(ctx, func(st *state) {
		employees = sortedByIDDesc(st.employees)
	})
	return employees, nil
}

func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	err := r.store.write(ctx, func(st *state) error {
		employee.ID = st.nextEmployeeID
		st.nextEmployeeID++
		st.employees[employee.ID] = employee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.employees[employee.ID]; !ok {
			return apperrors.ErrNotFound
		}
		st.employees[employee.ID] = employee
		return nil
	})
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.employees[employeeID]; !ok {
			return apperrors.ErrNotFound
		}
		delete(st.employees, employeeID)
		return nil
	})
}

func (r *EmployeeRepository) ReplaceEmployees(ctx context.Context, employees []domain.Employee) error {
	return r.store.write(ctx, func(st *state) error {
		replaced := make(map[int64]domain.Employee, len(employees))
		for _, e := range employees {
			if _, dup := replaced[e.ID]; dup {
				return fmt.Errorf("%w: employee id %d", apperrors.ErrDuplicate, e.ID)
			}
			replaced[e.ID] = e
		}
		st.employees = replaced
		st.nextEmployeeID = nextIDAfter(replaced)
		return nil
	})
}
