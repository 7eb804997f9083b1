package review

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, rev PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	List(ctx context.Context) ([]PerformanceReview, error)
	Update(ctx context.Context, rev PerformanceReview) error
	SoftDelete(ctx context.Context, id string) error
}
