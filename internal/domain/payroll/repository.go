package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context) ([]PayrollRecord, error)

	// SearchByName matches employee full names case-insensitively by
	// substring; an empty name returns every non-deleted record.
	SearchByName(ctx context.Context, name string) ([]PayrollRecord, error)

	Update(ctx context.Context, record PayrollRecord) error
	SoftDelete(ctx context.Context, id string) error
}
