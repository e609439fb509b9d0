// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package staff

import "context"

// Repository is the data access contract for one staff table.
//
// Email matching is case-insensitive. Missing rows surface as apperr NOT_FOUND.
type Repository interface {
	Create(context context.Context, member *Member) error
	FindByEmail(context context.Context, email string) (*Member, error)

	// List returns one page of members, newest first, and the total count.
	List(context context.Context, limit, offset int) ([]*Member, int, error)

	// Update persists every mutable field of member, keyed by its email.
	Update(context context.Context, member *Member) error
	DeleteByEmail(context context.Context, email string) error
}
