package importer

import (
	"errors"
	"fmt"
	"real-estate-marketplace/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var errMissingExternalID = errors.New("missing required external identifier (basic.id)")

// Service runs batch property imports against an injected database handle
type Service struct {
	db *gorm.DB
}

// NewService creates a new import service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ImportBatch processes items strictly in input order. Each item gets its
// own transaction: company resolution, property upsert, child replacement,
// then commit. A failed item rolls back alone and is reported in its result
// slot; the loop always continues to the next item.
func (s *Service) ImportBatch(items []Item) BatchResult {
	results := make([]ItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, s.importOne(item))
	}

	batch := BatchResult{Count: len(items), Results: results}
	log.Info().
		Int("count", batch.Count).
		Int("upserted", len(batch.SucceededIDs())).
		Msg("import batch completed")
	return batch
}

func (s *Service) importOne(item Item) ItemResult {
	extID := item.externalID()

	var propertyID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		companyID, err := resolveCompany(tx, item.Company)
		if err != nil {
			return fmt.Errorf("resolve company: %w", err)
		}

		propertyID, err = upsertProperty(tx, item, companyID)
		if err != nil {
			return err
		}

		return replaceChildren(tx, propertyID, item)
	})

	if err != nil {
		log.Warn().Int("external_id", extID).Err(err).Msg("import item failed")
		return ItemResult{ExternalID: extID, Error: err.Error()}
	}

	log.Debug().Int("external_id", extID).Uint("property_id", propertyID).Msg("item upserted")
	return ItemResult{ExternalID: extID, PropertyID: propertyID, Status: StatusUpserted}
}

// resolveCompany returns the id of the company matching the descriptor by
// exact name, creating the row on first encounter. A missing descriptor or
// blank name yields no company and no write.
func resolveCompany(tx *gorm.DB, in *CompanyInput) (*uint, error) {
	if in == nil || in.Name == "" {
		return nil, nil
	}

	var existing models.Company
	err := tx.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return &existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company := models.Company{
		Name:    in.Name,
		LogoImg: in.LogoImg,
		Address: in.Address,
	}
	if err := tx.Create(&company).Error; err != nil {
		return nil, err
	}
	return &company.ID, nil
}

// upsertProperty merges the item into the properties table keyed on the
// external identifier: create on first sight, otherwise overwrite every
// mapped column of the existing row (identity and creation time survive).
// Returns the internal property id in either branch.
func upsertProperty(tx *gorm.DB, item Item, companyID *uint) (uint, error) {
	extID := item.externalID()
	if extID <= 0 {
		return 0, errMissingExternalID
	}

	p := item.toProperty(companyID)

	var existing models.Property
	err := tx.Where("external_id = ?", extID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&p).Error; err != nil {
			return 0, err
		}
		return p.ID, nil
	}
	if err != nil {
		return 0, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := recordPriceChange(tx, existing, p); err != nil {
		return 0, err
	}

	// Save writes all columns, so fields the new item omits are nulled
	// rather than left at their previous values.
	if err := tx.Save(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}
