// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review stores customer product reviews.

Each identity holds at most one review per product. Posting again replaces
the previous rating and comment.
*/
package review

import (
	"context"
	"time"
)

// Review is one identity's rating of a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository defines the data access contract for reviews.
type Repository interface {
	// ListByProduct returns reviews of productID, newest first.
	ListByProduct(context context.Context, productID string) ([]*Review, error)

	// ListAll returns one page of every review and the total count.
	ListAll(context context.Context, limit, offset int) ([]*Review, int, error)

	FindByID(context context.Context, id string) (*Review, error)

	// Upsert stores review, replacing the rating, comment and name of an
	// existing review with the same (productId, userId). It returns the stored row.
	Upsert(context context.Context, review *Review) (*Review, error)

	Delete(context context.Context, id string) error
}

const (
	FieldProductID = "productId"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

const (
	minRating        = 1
	maxRating        = 5
	maxCommentLength = 1000
	anonymousName    = "User"
)
