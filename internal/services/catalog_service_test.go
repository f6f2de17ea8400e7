package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

func TestCreatePackageGuestOrdering(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})

	input := models.CreatePackageInput{
		Name:   "Gold",
		Price:  5000,
		Guests: models.MinMax{Min: 300, Max: 100},
	}

	_, err := svc.CreatePackage(context.Background(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Maximum guests must be greater than or equal to minimum guests", verr.Messages[0])
}

func TestListMenuItemsCategoryFilter(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})

	_, _, err := svc.ListMenuItems(context.Background(), "snacks", 0, 10)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}

func TestListRentalItemsCategoryFilter(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})

	_, _, err := svc.ListRentalItems(context.Background(), "vehicles", 0, 10)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}

func TestCreateMenuItemRejectsBadCategory(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{})

	_, err := svc.CreateMenuItem(context.Background(), models.CreateMenuItemInput{
		Name:     "Jollof",
		Category: "snacks",
		Price:    25,
	})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}
