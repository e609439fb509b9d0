// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bundle

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/pointer"
	"github.com/taibuivan/microcctv/pkg/slug"
)

// Service implements service package administration.
type Service struct {
	packages Repository
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(packages Repository, logger *slog.Logger) *Service {
	return &Service{packages: packages, logger: logger}
}

func validatePackage(pkg *Package) error {
	validator := &validate.Validator{}
	validator.Required(FieldPackageID, pkg.PackageID).
		Required(FieldPackageName, pkg.PackageName).
		Required(FieldDetails, pkg.Details).
		NonNegative(FieldPrice, pkg.Price)
	return validator.Err()
}

func (service *Service) List(context context.Context) ([]*Package, error) {
	return service.packages.List(context)
}

func (service *Service) Get(context context.Context, packageID string) (*Package, error) {
	return service.packages.FindByID(context, packageID)
}

// CreateInput describes a new package. An empty PackageID is derived from
// PackageName, so "Home Starter Kit" becomes "home-starter-kit".
type CreateInput struct {
	PackageID   string
	PackageName string
	Price       float64
	Details     string
}

func (service *Service) Create(context context.Context, input CreateInput) (*Package, error) {
	pkg := &Package{
		PackageID:   strings.TrimSpace(input.PackageID),
		PackageName: strings.TrimSpace(input.PackageName),
		Price:       input.Price,
		Details:     strings.TrimSpace(input.Details),
	}
	if pkg.PackageID == "" {
		pkg.PackageID = slug.From(pkg.PackageName)
	}

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := service.packages.Create(context, pkg); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "package_created", slog.String("package_id", pkg.PackageID))
	return pkg, nil
}

// UpdateInput is a partial update. Nil fields stay unchanged.
type UpdateInput struct {
	PackageName *string
	Price       *float64
	Details     *string
}

func (service *Service) Update(context context.Context, packageID string, input UpdateInput) (*Package, error) {
	pkg, err := service.packages.FindByID(context, packageID)
	if err != nil {
		return nil, err
	}

	pkg.PackageName = strings.TrimSpace(pointer.Fallback(input.PackageName, pkg.PackageName))
	pkg.Price = pointer.Fallback(input.Price, pkg.Price)
	pkg.Details = strings.TrimSpace(pointer.Fallback(input.Details, pkg.Details))

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := service.packages.Update(context, pkg); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "package_updated", slog.String("package_id", pkg.PackageID))
	return pkg, nil
}

func (service *Service) Delete(context context.Context, packageID string) error {
	if err := service.packages.Delete(context, packageID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "package_deleted", slog.String("package_id", packageID))
	return nil
}
