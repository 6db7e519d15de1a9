package cleanup

import (
	"fmt"
	"testing"
	"time"

	"real-estate-marketplace/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Property{},
		&models.GalleryImage{},
		&models.ParkFeature{},
		&models.Special{},
		&models.Room{},
		&models.KitchenFeature{},
		&models.CommunityFeature{},
		&models.NearbySchool{},
		&models.PriceChange{},
		&models.PurgeLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedProperty(t *testing.T, db *gorm.DB, externalID int, isDemo bool, ageDays int) models.Property {
	t.Helper()

	prop := models.Property{
		ExternalID: externalID,
		Address:    fmt.Sprintf("%d Test St", externalID),
		IsDemo:     isDemo,
		CreatedAt:  time.Now().AddDate(0, 0, -ageDays),
	}
	if err := db.Create(&prop).Error; err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}

	db.Create(&models.GalleryImage{PropertyID: prop.ID, URL: "img.jpg"})
	db.Create(&models.Room{PropertyID: prop.ID, Name: "bedroom"})
	return prop
}

func TestFindExpiredDemoListings(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	seedProperty(t, db, 1, true, 60)  // expired demo
	seedProperty(t, db, 2, true, 5)   // recent demo
	seedProperty(t, db, 3, false, 60) // old but real

	expired, err := svc.FindExpiredDemoListings(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expired) != 1 || expired[0].ExternalID != 1 {
		t.Fatalf("expected only the expired demo listing, got %+v", expired)
	}
}

func TestPurgeDemoListings(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	old := seedProperty(t, db, 1, true, 60)
	kept := seedProperty(t, db, 2, false, 60)

	result, err := svc.PurgeDemoListings(PurgeConfig{RetentionDays: 30, MaxDeletionCount: 100})
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if result.DeletedCount != 1 || result.ErrorCount != 0 {
		t.Fatalf("result = %+v, want one deletion", result)
	}

	var count int64
	db.Model(&models.Property{}).Where("id = ?", old.ID).Count(&count)
	if count != 0 {
		t.Error("expired demo listing should be gone")
	}

	db.Model(&models.GalleryImage{}).Where("property_id = ?", old.ID).Count(&count)
	if count != 0 {
		t.Error("child rows should be deleted with the listing")
	}

	db.Model(&models.Property{}).Where("id = ?", kept.ID).Count(&count)
	if count != 1 {
		t.Error("non-demo listing must survive the purge")
	}

	var logs []models.PurgeLog
	db.Find(&logs)
	if len(logs) != 1 || logs[0].PropertyID != old.ID || logs[0].Reason != models.PurgeReasonDemoExpired {
		t.Errorf("purge log mismatch: %+v", logs)
	}
}

func TestPurgeDryRunDeletesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	seedProperty(t, db, 1, true, 60)

	result, err := svc.PurgeDemoListings(PurgeConfig{RetentionDays: 30, MaxDeletionCount: 100, DryRun: true})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if !result.DryRun || result.DeletedCount != 1 {
		t.Fatalf("result = %+v, want dry-run with one target", result)
	}

	var props, logs int64
	db.Model(&models.Property{}).Count(&props)
	db.Model(&models.PurgeLog{}).Count(&logs)
	if props != 1 || logs != 0 {
		t.Errorf("dry run changed the database: %d properties, %d logs", props, logs)
	}
}

func TestPurgeSafetyCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	seedProperty(t, db, 1, true, 60)
	seedProperty(t, db, 2, true, 60)

	_, err := svc.PurgeDemoListings(PurgeConfig{RetentionDays: 30, MaxDeletionCount: 1})
	if err == nil {
		t.Fatal("expected safety check error when targets exceed the cap")
	}

	var count int64
	db.Model(&models.Property{}).Count(&count)
	if count != 2 {
		t.Errorf("safety check must leave the database untouched, got %d rows", count)
	}
}
