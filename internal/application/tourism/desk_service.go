package tourism

import (
	"context"
	"fmt"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// deskPhotoContentTypes lists the accepted photo uploads
var deskPhotoContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// DeskService manages information desks
type DeskService struct {
	deskRepo tourism.InformationDeskRepository
	typeRepo tourism.InformationDeskTypeRepository
	store    storage.ObjectStorage
	logger   *zap.Logger
}

// NewDeskService creates a new information desk service
func NewDeskService(
	deskRepo tourism.InformationDeskRepository,
	typeRepo tourism.InformationDeskTypeRepository,
	store storage.ObjectStorage,
	logger *zap.Logger,
) *DeskService {
	return &DeskService{deskRepo: deskRepo, typeRepo: typeRepo, store: store, logger: logger}
}

// Create registers an information desk
func (s *DeskService) Create(ctx context.Context, input CreateDeskInput) (*tourism.InformationDesk, error) {
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "desk type does not exist")
	}
	desk, err := tourism.NewInformationDesk(input.Name, input.TypeID, input.Geometry)
	if err != nil {
		return nil, err
	}
	desk.Update(input.Description, input.Phone, input.Email, input.Website,
		input.Street, input.PostalCode, input.Municipality)

	if err := s.deskRepo.Save(ctx, desk); err != nil {
		s.logger.Error("Failed to save information desk", zap.Error(err))
		return nil, err
	}
	return desk, nil
}

// Get returns an information desk
func (s *DeskService) Get(ctx context.Context, id uuid.UUID) (*tourism.InformationDesk, error) {
	return s.deskRepo.FindByID(ctx, id)
}

// List returns all information desks
func (s *DeskService) List(ctx context.Context, filter shared.Filter) ([]tourism.InformationDesk, error) {
	return s.deskRepo.FindAll(ctx, filter)
}

// ListByType returns desks of one type
func (s *DeskService) ListByType(ctx context.Context, typeID uuid.UUID) ([]tourism.InformationDesk, error) {
	if _, err := s.typeRepo.FindByID(ctx, typeID); err != nil {
		return nil, err
	}
	return s.deskRepo.FindByType(ctx, typeID)
}

// Update modifies an information desk
func (s *DeskService) Update(ctx context.Context, id uuid.UUID, input UpdateDeskInput) (*tourism.InformationDesk, error) {
	desk, err := s.deskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	desk.Update(input.Description, input.Phone, input.Email, input.Website,
		input.Street, input.PostalCode, input.Municipality)
	if input.Geometry != nil {
		if !input.Geometry.IsZero() && input.Geometry.Type != shared.GeometryPoint {
			return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "desk geometry must be a point")
		}
		desk.Geometry = *input.Geometry
	}
	if err := s.deskRepo.Save(ctx, desk); err != nil {
		return nil, err
	}
	return desk, nil
}

// Delete removes an information desk
func (s *DeskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.deskRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.deskRepo.Delete(ctx, id)
}

// UploadPhoto stores a desk photo and records its object key
func (s *DeskService) UploadPhoto(ctx context.Context, id uuid.UUID, data []byte, contentType string) (*tourism.InformationDesk, error) {
	ext, ok := deskPhotoContentTypes[contentType]
	if !ok {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unsupported photo content type")
	}
	desk, err := s.deskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("desks/%s.%s", desk.ID, ext)
	if err := s.store.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Failed to upload desk photo", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	desk.SetPhoto(key)
	if err := s.deskRepo.Save(ctx, desk); err != nil {
		return nil, err
	}
	return desk, nil
}
