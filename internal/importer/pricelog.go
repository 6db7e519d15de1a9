package importer

import (
	"real-estate-marketplace/internal/models"

	"gorm.io/gorm"
)

// recordPriceChange writes a price_changes row when an update moves the
// listing price. Runs inside the item's transaction so the history entry
// commits or rolls back together with the new price.
func recordPriceChange(tx *gorm.DB, existing, updated models.Property) error {
	if floatPtrEqual(existing.Price, updated.Price) {
		return nil
	}

	change := models.PriceChange{
		PropertyID: existing.ID,
		OldPrice:   existing.Price,
		NewPrice:   updated.Price,
	}
	if existing.Price != nil && updated.Price != nil {
		m := *updated.Price - *existing.Price
		change.Magnitude = &m
	}
	return tx.Create(&change).Error
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
