package importer

import (
	"real-estate-marketplace/internal/models"

	"gorm.io/gorm"
)

// replaceChildren rewrites every dependent collection so the stored rows
// exactly mirror the imported item. The deletes are unconditional: an empty
// or missing list clears whatever a previous import stored. SortOrder keeps
// the imported array order.
func replaceChildren(tx *gorm.DB, propertyID uint, item Item) error {
	owned := []interface{}{
		&models.GalleryImage{},
		&models.ParkFeature{},
		&models.Special{},
		&models.Room{},
		&models.KitchenFeature{},
		&models.CommunityFeature{},
		&models.NearbySchool{},
	}
	for _, m := range owned {
		if err := tx.Where("property_id = ?", propertyID).Delete(m).Error; err != nil {
			return err
		}
	}

	if urls := item.galleryImages(); len(urls) > 0 {
		rows := make([]models.GalleryImage, len(urls))
		for i, u := range urls {
			rows[i] = models.GalleryImage{PropertyID: propertyID, URL: u, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if names := item.parkFeatures(); len(names) > 0 {
		rows := make([]models.ParkFeature, len(names))
		for i, n := range names {
			rows[i] = models.ParkFeature{PropertyID: propertyID, Name: n, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if labels := item.Special; len(labels) > 0 {
		rows := make([]models.Special, len(labels))
		for i, l := range labels {
			rows[i] = models.Special{PropertyID: propertyID, Label: l, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if names := item.rooms(); len(names) > 0 {
		rows := make([]models.Room, len(names))
		for i, n := range names {
			rows[i] = models.Room{PropertyID: propertyID, Name: n, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if names := item.kitchenFeatures(); len(names) > 0 {
		rows := make([]models.KitchenFeature, len(names))
		for i, n := range names {
			rows[i] = models.KitchenFeature{PropertyID: propertyID, Name: n, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if names := item.communityFeatures(); len(names) > 0 {
		rows := make([]models.CommunityFeature, len(names))
		for i, n := range names {
			rows[i] = models.CommunityFeature{PropertyID: propertyID, Name: n, SortOrder: i}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(item.NearbySchools) > 0 {
		rows := make([]models.NearbySchool, len(item.NearbySchools))
		for i, sc := range item.NearbySchools {
			rows[i] = models.NearbySchool{
				PropertyID: propertyID,
				Name:       sc.Name,
				Distance:   sc.Distance,
				Rating:     sc.Rating,
				SortOrder:  i,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}
