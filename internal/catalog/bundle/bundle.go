// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package bundle manages service packages, such as an installation bundle
// sold at a fixed price.
package bundle

import (
	"context"
	"time"
)

// Package is a priced service offering.
type Package struct {
	PackageID   string    `json:"packageId"`
	PackageName string    `json:"packageName"`
	Price       float64   `json:"price"`
	Details     string    `json:"details"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository defines the data access contract for packages.
type Repository interface {
	List(context context.Context) ([]*Package, error)
	FindByID(context context.Context, packageID string) (*Package, error)
	Create(context context.Context, pkg *Package) error
	Update(context context.Context, pkg *Package) error
	Delete(context context.Context, packageID string) error
}

const (
	FieldPackageID   = "packageId"
	FieldPackageName = "packageName"
	FieldPrice       = "price"
	FieldDetails     = "details"
)
