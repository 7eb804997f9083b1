package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/employee"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/review"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type reviewRepository struct {
	db database.Querier
}

func NewReviewRepository(db database.Querier) review.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `
	pr.id, pr.employee_id, pr.review_date, pr.reviewer, pr.rating,
	pr.comments, pr.category, pr.status, pr.created_at, pr.updated_at,
	e.full_name, e.position, e.department, e.profile_image
`

func scanReview(row pgx.Row) (review.PerformanceReview, error) {
	var rev review.PerformanceReview
	err := row.Scan(
		&rev.ID, &rev.EmployeeID, &rev.ReviewDate, &rev.Reviewer, &rev.Rating,
		&rev.Comments, &rev.Category, &rev.Status, &rev.CreatedAt, &rev.UpdatedAt,
		&rev.EmployeeName, &rev.EmployeePosition, &rev.EmployeeDepartment, &rev.ProfileImage,
	)
	return rev, err
}

// Create implements review.ReviewRepository.
func (r *reviewRepository) Create(ctx context.Context, rev review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO performance_reviews (
				id, employee_id, review_date, reviewer, rating, comments, category, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + reviewColumns + `
		FROM inserted pr
		JOIN employees e ON pr.employee_id = e.id
	`

	created, err := scanReview(q.QueryRow(ctx, query,
		uuid.NewString(),
		rev.EmployeeID,
		rev.ReviewDate,
		rev.Reviewer,
		rev.Rating,
		rev.Comments,
		rev.Category,
		rev.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return review.PerformanceReview{}, employee.ErrEmployeeNotFound
		}
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return created, nil
}

// GetByID implements review.ReviewRepository.
func (r *reviewRepository) GetByID(ctx context.Context, id string) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1 AND NOT pr.is_deleted
	`

	rev, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return review.PerformanceReview{}, review.ErrReviewNotFound
		}
		return review.PerformanceReview{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return rev, nil
}

// List implements review.ReviewRepository.
func (r *reviewRepository) List(ctx context.Context) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE NOT pr.is_deleted
		ORDER BY pr.review_date DESC, pr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []review.PerformanceReview
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance reviews: %w", err)
	}

	return reviews, nil
}

// Update implements review.ReviewRepository.
func (r *reviewRepository) Update(ctx context.Context, rev review.PerformanceReview) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews SET
			review_date = $2,
			reviewer = $3,
			rating = $4,
			comments = $5,
			category = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query,
		rev.ID,
		rev.ReviewDate,
		rev.Reviewer,
		rev.Rating,
		rev.Comments,
		rev.Category,
		rev.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// SoftDelete implements review.ReviewRepository.
func (r *reviewRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}
