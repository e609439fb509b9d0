// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bundle_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/catalog/bundle"
	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/pkg/pointer"
)

type memoryPackages map[string]*bundle.Package

func (store memoryPackages) List(_ context.Context) ([]*bundle.Package, error) {
	packages := []*bundle.Package{}
	for _, pkg := range store {
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (store memoryPackages) FindByID(_ context.Context, packageID string) (*bundle.Package, error) {
	pkg, found := store[packageID]
	if !found {
		return nil, apperr.NotFound("Package")
	}
	copied := *pkg
	return &copied, nil
}

func (store memoryPackages) Create(_ context.Context, pkg *bundle.Package) error {
	if _, found := store[pkg.PackageID]; found {
		return apperr.Conflict("Package already exists")
	}
	store[pkg.PackageID] = pkg
	return nil
}

func (store memoryPackages) Update(_ context.Context, pkg *bundle.Package) error {
	store[pkg.PackageID] = pkg
	return nil
}

func (store memoryPackages) Delete(_ context.Context, packageID string) error {
	if _, found := store[packageID]; !found {
		return apperr.NotFound("Package")
	}
	delete(store, packageID)
	return nil
}

func newService() *bundle.Service {
	return bundle.NewService(memoryPackages{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_DerivesPackageID(t *testing.T) {
	service := newService()

	pkg, err := service.Create(context.Background(), bundle.CreateInput{
		PackageName: "Home Starter Kit (4 Cameras)",
		Price:       95000,
		Details:     "4 cameras, DVR, installation",
	})
	require.NoError(t, err)
	assert.Equal(t, "home-starter-kit-4-cameras", pkg.PackageID)

	explicit, err := service.Create(context.Background(), bundle.CreateInput{
		PackageID: "PKG-01", PackageName: "Home Starter Kit", Details: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "PKG-01", explicit.PackageID)
}

func TestCreate_Validation(t *testing.T) {
	service := newService()

	_, err := service.Create(context.Background(), bundle.CreateInput{Price: -5})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Len(t, appErr.Details, 4)
}

func TestUpdateAndDelete(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.Create(ctx, bundle.CreateInput{PackageName: "Office Kit", Price: 1, Details: "8 cameras"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, "office-kit", bundle.UpdateInput{Price: pointer.To(250000.0)})
	require.NoError(t, err)
	assert.Equal(t, 250000.0, updated.Price)
	assert.Equal(t, "8 cameras", updated.Details)

	require.NoError(t, service.Delete(ctx, "office-kit"))
	assert.True(t, apperr.HasCode(service.Delete(ctx, "office-kit"), apperr.CodeNotFound))
}
