package review

import "time"

type PerformanceReview struct {
	ID         string
	EmployeeID string
	ReviewDate time.Time
	Reviewer   string
	Rating     Rating
	Comments   string
	Category   string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee display fields
	EmployeeName       string
	EmployeePosition   string
	EmployeeDepartment string
	ProfileImage       string
}

type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingAverage   Rating = "Average"
	RatingPoor      Rating = "Poor"
)

func ValidRatings() []string {
	return []string{string(RatingExcellent), string(RatingGood), string(RatingAverage), string(RatingPoor)}
}
