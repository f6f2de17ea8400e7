package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

var (
	menuCategories   = map[string]bool{"starter": true, "main": true, "dessert": true, "beverage": true}
	rentalCategories = map[string]bool{"furniture": true, "lighting": true, "sound": true, "tableware": true, "other": true}
)

// CatalogService handles packages, menu items and rental items.
type CatalogService struct {
	catalogRepo models.CatalogRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (cs *CatalogService) CreatePackage(ctx context.Context, input models.CreatePackageInput) (*models.Package, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.MinMax("guests", input.Guests.Min, input.Guests.Max); err != nil {
		return nil, err
	}

	now := time.Now()
	pkg := &models.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Guests:      input.Guests,
		Services:    input.Services,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return cs.catalogRepo.CreatePackage(ctx, pkg)
}

func (cs *CatalogService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid package ID format")
	}
	pkg, err := cs.catalogRepo.GetPackageByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("package not found")
	}
	return pkg, err
}

func (cs *CatalogService) ListPackages(ctx context.Context, offset, limit int) ([]*models.Package, int, error) {
	return cs.catalogRepo.ListPackages(ctx, offset, limit)
}

func (cs *CatalogService) UpdatePackage(ctx context.Context, id string, input models.UpdatePackageInput) (*models.Package, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Guests != nil {
		if err := validation.MinMax("guests", input.Guests.Min, input.Guests.Max); err != nil {
			return nil, err
		}
	}

	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid package ID format")
	}
	if err := cs.catalogRepo.UpdatePackage(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("package not found")
		}
		return nil, err
	}
	return cs.catalogRepo.GetPackageByID(ctx, oid)
}

func (cs *CatalogService) DeletePackage(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid package ID format")
	}
	if err := cs.catalogRepo.DeletePackage(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("package not found")
		}
		return err
	}
	return nil
}

func (cs *CatalogService) CreateMenuItem(ctx context.Context, input models.CreateMenuItemInput) (*models.MenuItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return cs.catalogRepo.CreateMenuItem(ctx, item)
}

func (cs *CatalogService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid menu item ID format")
	}
	item, err := cs.catalogRepo.GetMenuItemByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("menu item not found")
	}
	return item, err
}

func (cs *CatalogService) ListMenuItems(ctx context.Context, category string, offset, limit int) ([]*models.MenuItem, int, error) {
	filter := bson.M{}
	if category != "" {
		if !menuCategories[category] {
			return nil, 0, validation.BadRequest("invalid menu category")
		}
		filter["category"] = category
	}
	return cs.catalogRepo.ListMenuItems(ctx, filter, offset, limit)
}

func (cs *CatalogService) UpdateMenuItem(ctx context.Context, id string, input models.UpdateMenuItemInput) (*models.MenuItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid menu item ID format")
	}
	if err := cs.catalogRepo.UpdateMenuItem(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("menu item not found")
		}
		return nil, err
	}
	return cs.catalogRepo.GetMenuItemByID(ctx, oid)
}

func (cs *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid menu item ID format")
	}
	if err := cs.catalogRepo.DeleteMenuItem(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("menu item not found")
		}
		return err
	}
	return nil
}

func (cs *CatalogService) CreateRentalItem(ctx context.Context, input models.CreateRentalItemInput) (*models.RentalItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.RentalItem{
		Name:              input.Name,
		Category:          input.Category,
		PricePerUnit:      input.PricePerUnit,
		QuantityAvailable: input.QuantityAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return cs.catalogRepo.CreateRentalItem(ctx, item)
}

func (cs *CatalogService) GetRentalItem(ctx context.Context, id string) (*models.RentalItem, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid rental item ID format")
	}
	item, err := cs.catalogRepo.GetRentalItemByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("rental item not found")
	}
	return item, err
}

func (cs *CatalogService) ListRentalItems(ctx context.Context, category string, offset, limit int) ([]*models.RentalItem, int, error) {
	filter := bson.M{}
	if category != "" {
		if !rentalCategories[category] {
			return nil, 0, validation.BadRequest("invalid rental category")
		}
		filter["category"] = category
	}
	return cs.catalogRepo.ListRentalItems(ctx, filter, offset, limit)
}

func (cs *CatalogService) UpdateRentalItem(ctx context.Context, id string, input models.UpdateRentalItemInput) (*models.RentalItem, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid rental item ID format")
	}
	if err := cs.catalogRepo.UpdateRentalItem(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("rental item not found")
		}
		return nil, err
	}
	return cs.catalogRepo.GetRentalItemByID(ctx, oid)
}

func (cs *CatalogService) DeleteRentalItem(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid rental item ID format")
	}
	if err := cs.catalogRepo.DeleteRentalItem(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("rental item not found")
		}
		return err
	}
	return nil
}
