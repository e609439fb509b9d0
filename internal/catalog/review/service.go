// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/uuid"
)

// ProductFinder confirms that a reviewed product exists.
type ProductFinder interface {
	FindByID(context context.Context, productID string) (*product.Product, error)
}

// Service implements the review use cases.
type Service struct {
	reviews  Repository
	products ProductFinder
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(reviews Repository, products ProductFinder, logger *slog.Logger) *Service {
	return &Service{reviews: reviews, products: products, logger: logger}
}

// ListByProduct returns the reviews of productID.
func (service *Service) ListByProduct(context context.Context, productID string) ([]*Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, validate.RequiredError(FieldProductID, "productId is required")
	}
	return service.reviews.ListByProduct(context, productID)
}

// ListAll returns one page of every review.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Review, int, error) {
	return service.reviews.ListAll(context, limit, offset)
}

// PostInput is a review submission.
type PostInput struct {
	ProductID string
	Rating    int
	Comment   string
}

/*
Post creates or replaces the caller's review of a product.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Author, must carry a durable key)
  - input: PostInput

Returns:
  - *Review: The stored review
  - error: InvalidPayload, NotFound (unknown product) or storage errors
*/
func (service *Service) Post(context context.Context, claims *sec.AuthClaims, input PostInput) (*Review, error) {
	comment := strings.TrimSpace(input.Comment)

	validator := &validate.Validator{}
	validator.Required(FieldProductID, input.ProductID).
		Range(FieldRating, input.Rating, minRating, maxRating).
		Required(FieldComment, comment).
		MaxLen(FieldComment, comment, maxCommentLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.products.FindByID(context, input.ProductID); err != nil {
		return nil, err
	}

	userName := claims.FullName()
	if userName == "" {
		userName = anonymousName
	}

	stored, err := service.reviews.Upsert(context, &Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    claims.UserID,
		UserName:  userName,
		Rating:    input.Rating,
		Comment:   comment,
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "review_posted",
		slog.String("review_id", stored.ID),
		slog.String("product_id", stored.ProductID),
	)
	return stored, nil
}

// Delete removes a review. Only its author or an admin may do so.
func (service *Service) Delete(context context.Context, claims *sec.AuthClaims, id string) error {
	if !uuid.Valid(id) {
		return apperr.NotFound(reviewResource)
	}

	review, err := service.reviews.FindByID(context, id)
	if err != nil {
		return err
	}

	if !sec.IsOwnerOrAdmin(claims, review.UserID) {
		return apperr.Forbidden("You can only delete your own review")
	}

	if err := service.reviews.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "review_deleted", slog.String("review_id", id))
	return nil
}
