package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewsController struct {
	reviews Reviews
	users   UserResolver
}

func NewReviewsController(reviews Reviews, users UserResolver) *ReviewsController {
	return &ReviewsController{reviews: reviews, users: users}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create adds the caller's review for a book. Each user may review a
// given book at most once.
// POST /books/:id/reviews
func (controller *ReviewsController) Create(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid review payload")
		return
	}

	review, err := controller.reviews.AddReview(GetUserID(c), bookID, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err, "book")
		return
	}
	respondCreated(c, review)
}

// Update edits the caller's own review.
// PUT /reviews/:id
func (controller *ReviewsController) Update(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid review payload")
		return
	}

	review, err := controller.reviews.EditReview(GetUserID(c), reviewID, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err, "review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete removes a review. The review's author and admins may delete it.
// DELETE /reviews/:id
func (controller *ReviewsController) Delete(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, err := controller.users.GetUserByID(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "resolve caller")
		return
	}

	if err := controller.reviews.DeleteReview(caller, reviewID); err != nil {
		respondServiceError(c, err, "review")
		return
	}
	respondSuccess(c, "review deleted")
}
