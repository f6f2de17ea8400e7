package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

var staffPositions = map[string]bool{
	"coordinator": true,
	"waiter":      true,
	"chef":        true,
	"security":    true,
	"technician":  true,
}

// VendorService handles photographers, musical groups and staff.
type VendorService struct {
	vendorsRepo models.VendorsRepo
}

func NewVendorService(vendorsRepo models.VendorsRepo) *VendorService {
	return &VendorService{
		vendorsRepo: vendorsRepo,
	}
}

func requireFreeEmail(ctx context.Context, check func(context.Context, string, primitive.ObjectID) (bool, error), email string, exclude primitive.ObjectID) error {
	taken, err := check(ctx, email, exclude)
	if err != nil {
		return err
	}
	if taken {
		return validation.BadRequest(fmt.Sprintf("Email %s is already in use", email))
	}
	return nil
}

func (vs *VendorService) CreatePhotographer(ctx context.Context, input models.CreatePhotographerInput) (*models.Photographer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := requireFreeEmail(ctx, vs.vendorsRepo.PhotographerEmailExists, input.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &models.Photographer{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PricePerEvent: input.PricePerEvent,
		Portfolio:     input.Portfolio,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return vs.vendorsRepo.CreatePhotographer(ctx, p)
}

func (vs *VendorService) GetPhotographer(ctx context.Context, id string) (*models.Photographer, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid photographer ID format")
	}
	p, err := vs.vendorsRepo.GetPhotographerByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("photographer not found")
	}
	return p, err
}

func (vs *VendorService) ListPhotographers(ctx context.Context, offset, limit int) ([]*models.Photographer, int, error) {
	return vs.vendorsRepo.ListPhotographers(ctx, offset, limit)
}

func (vs *VendorService) UpdatePhotographer(ctx context.Context, id string, input models.UpdatePhotographerInput) (*models.Photographer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid photographer ID format")
	}
	if input.Email != nil {
		if err := requireFreeEmail(ctx, vs.vendorsRepo.PhotographerEmailExists, *input.Email, oid); err != nil {
			return nil, err
		}
	}
	if err := vs.vendorsRepo.UpdatePhotographer(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("photographer not found")
		}
		return nil, err
	}
	return vs.vendorsRepo.GetPhotographerByID(ctx, oid)
}

func (vs *VendorService) DeletePhotographer(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid photographer ID format")
	}
	if err := vs.vendorsRepo.DeletePhotographer(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("photographer not found")
		}
		return err
	}
	return nil
}

func (vs *VendorService) CreateMusicalGroup(ctx context.Context, input models.CreateMusicalGroupInput) (*models.MusicalGroup, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := requireFreeEmail(ctx, vs.vendorsRepo.MusicalGroupEmailExists, input.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &models.MusicalGroup{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Genre:         input.Genre,
		MembersCount:  input.MembersCount,
		PricePerEvent: input.PricePerEvent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return vs.vendorsRepo.CreateMusicalGroup(ctx, g)
}

func (vs *VendorService) GetMusicalGroup(ctx context.Context, id string) (*models.MusicalGroup, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid musical group ID format")
	}
	g, err := vs.vendorsRepo.GetMusicalGroupByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("musical group not found")
	}
	return g, err
}

func (vs *VendorService) ListMusicalGroups(ctx context.Context, offset, limit int) ([]*models.MusicalGroup, int, error) {
	return vs.vendorsRepo.ListMusicalGroups(ctx, offset, limit)
}

func (vs *VendorService) UpdateMusicalGroup(ctx context.Context, id string, input models.UpdateMusicalGroupInput) (*models.MusicalGroup, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid musical group ID format")
	}
	if input.Email != nil {
		if err := requireFreeEmail(ctx, vs.vendorsRepo.MusicalGroupEmailExists, *input.Email, oid); err != nil {
			return nil, err
		}
	}
	if err := vs.vendorsRepo.UpdateMusicalGroup(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("musical group not found")
		}
		return nil, err
	}
	return vs.vendorsRepo.GetMusicalGroupByID(ctx, oid)
}

func (vs *VendorService) DeleteMusicalGroup(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid musical group ID format")
	}
	if err := vs.vendorsRepo.DeleteMusicalGroup(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("musical group not found")
		}
		return err
	}
	return nil
}

func (vs *VendorService) CreateStaff(ctx context.Context, input models.CreateStaffInput) (*models.Staff, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := requireFreeEmail(ctx, vs.vendorsRepo.StaffEmailExists, input.Email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	s := &models.Staff{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Position:  input.Position,
		Salary:    input.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return vs.vendorsRepo.CreateStaff(ctx, s)
}

func (vs *VendorService) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid staff ID format")
	}
	s, err := vs.vendorsRepo.GetStaffByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("staff member not found")
	}
	return s, err
}

func (vs *VendorService) ListStaff(ctx context.Context, position string, offset, limit int) ([]*models.Staff, int, error) {
	filter := bson.M{}
	if position != "" {
		if !staffPositions[position] {
			return nil, 0, validation.BadRequest("invalid staff position")
		}
		filter["position"] = position
	}
	return vs.vendorsRepo.ListStaff(ctx, filter, offset, limit)
}

func (vs *VendorService) UpdateStaff(ctx context.Context, id string, input models.UpdateStaffInput) (*models.Staff, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid staff ID format")
	}
	if input.Email != nil {
		if err := requireFreeEmail(ctx, vs.vendorsRepo.StaffEmailExists, *input.Email, oid); err != nil {
			return nil, err
		}
	}
	if err := vs.vendorsRepo.UpdateStaff(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("staff member not found")
		}
		return nil, err
	}
	return vs.vendorsRepo.GetStaffByID(ctx, oid)
}

func (vs *VendorService) DeleteStaff(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid staff ID format")
	}
	if err := vs.vendorsRepo.DeleteStaff(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("staff member not found")
		}
		return err
	}
	return nil
}
