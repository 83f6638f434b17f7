package review

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"EcoMart-Backend/pkg/catalog"
	"EcoMart-Backend/pkg/user"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ReviewService interface {
		WriteReview(ctx context.Context, req domain.WriteReviewRequest, itemName string, userID string) (*domain.ReviewResponse, error)
		GetReviews(ctx context.Context, itemName string) ([]*domain.ReviewResponse, error)
	}

	reviewService struct {
		reviewRepository  ReviewRepository
		catalogRepository catalog.CatalogRepository
		userRepository    user.UserRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, catalogRepository catalog.CatalogRepository, userRepository user.UserRepository) ReviewService {
	return &reviewService{
		reviewRepository:  reviewRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
	}
}

func (s *reviewService) WriteReview(ctx context.Context, req domain.WriteReviewRequest, itemName string, userID string) (*domain.ReviewResponse, error) {
	item, err := s.catalogRepository.GetItemByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	author, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := &entities.Review{
		ItemID:   item.ID,
		Username: author.Username,
		Body:     req.Body,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return &domain.ReviewResponse{
		ID:        review.ID.String(),
		Username:  review.Username,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetReviews(ctx context.Context, itemName string) ([]*domain.ReviewResponse, error) {
	item, err := s.catalogRepository.GetItemByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepository.GetReviewsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, &domain.ReviewResponse{
			ID:        r.ID.String(),
			Username:  r.Username,
			Body:      r.Body,
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}
