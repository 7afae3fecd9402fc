package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// ReviewStore defines the database operations the review service needs.
// Create must rely on the storage-level unique constraint on (user,
// book); a duplicate-key failure is translated here to
// ErrDuplicateReview rather than surfaced as an infrastructure fault.
type ReviewStore interface {
	Create(review *entities.Review) error
	GetByID(id uint) (*entities.Review, error)
	GetByUserAndBook(userID, bookID uint) (*entities.Review, error)
	Update(id uint, rating int, comment string) error
	Delete(id uint) error
}

// ReviewService manages the one-review-per-user-per-book invariant and
// the rating range constraint.
type ReviewService struct {
	reviews ReviewStore
	books   BookLookup
}

// NewReviewService creates a review service.
func NewReviewService(reviews ReviewStore, books BookLookup) *ReviewService {
	return &ReviewService{reviews: reviews, books: books}
}

// AddReview posts the user's review of a book. A second review for the
// same pair fails with ErrDuplicateReview and leaves the original
// unchanged; editing is the recovery path.
func (s *ReviewService) AddReview(userID, bookID uint, rating int, comment string) (*entities.Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	if _, err := s.books.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	review := &entities.Review{
		UserID:  userID,
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// EditReview overwrites the rating and comment of the caller's review.
func (s *ReviewService) EditReview(callerID, reviewID uint, rating int, comment string) (*entities.Review, error) {
	review, err := s.reviews.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review.UserID != callerID {
		return nil, ErrNotPermitted
	}

	if err := validateRating(rating); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(reviewID, rating, comment); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	review.Rating = rating
	review.Comment = comment
	return review, nil
}

// DeleteReview removes a review. The caller must own it or be an admin.
func (s *ReviewService) DeleteReview(caller *entities.User, reviewID uint) error {
	review, err := s.reviews.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get review: %w", err)
	}
	if caller == nil || (review.UserID != caller.ID && !caller.IsAdmin()) {
		return ErrNotPermitted
	}

	if err := s.reviews.Delete(reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < entities.MinRating || rating > entities.MaxRating {
		v := newValidationError()
		v.add("rating", fmt.Sprintf("rating must be between %d and %d", entities.MinRating, entities.MaxRating))
		return v
	}
	return nil
}
