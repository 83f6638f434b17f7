package domain

import (
	"time"
)

var (
	MessageSuccessWriteReview = "review submitted successfully"
	MessageSuccessGetReviews  = "reviews retrieved successfully"

	MessageFailedWriteReview = "failed to submit review"
	MessageFailedGetReviews  = "failed to retrieve reviews"
)

type (
	WriteReviewRequest struct {
		Body string `json:"body" validate:"required"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Body      string    `json:"body"`
		CreatedAt time.Time `json:"created_at"`
	}
)
