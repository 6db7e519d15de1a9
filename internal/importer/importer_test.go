package importer

import (
	"fmt"
	"testing"

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
		&models.Company{},
		&models.Property{},
		&models.GalleryImage{},
		&models.ParkFeature{},
		&models.Special{},
		&models.Room{},
		&models.KitchenFeature{},
		&models.CommunityFeature{},
		&models.NearbySchool{},
		&models.PriceChange{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validItem(extID int) Item {
	return Item{
		Company: &CompanyInput{Name: "Acme Realty", Address: "1 Main St"},
		Basic: &BasicInput{
			ID:     extID,
			Type:   "house",
			Status: "for_sale",
			Price:  floatPtr(250000),
			Beds:   intPtr(3),
		},
		Location: &LocationInput{City: "Austin", State: "TX"},
		Media: &MediaInput{
			MainImg:       "main.jpg",
			GalleryImages: []string{"a.jpg", "b.jpg"},
		},
	}
}

func TestImportCreatesPropertyAndChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(101)
	item.Special = []string{"move-in bonus"}
	item.NearbySchools = []SchoolInput{
		{Name: "Hilltop Elementary", Distance: floatPtr(0.4), Rating: floatPtr(8)},
		{Name: "Valley High", Distance: floatPtr(1.2)},
	}

	batch := svc.ImportBatch([]Item{item})

	if batch.Count != 1 {
		t.Fatalf("count = %d, want 1", batch.Count)
	}
	res := batch.Results[0]
	if res.Error != "" {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	if res.ExternalID != 101 || res.Status != StatusUpserted || res.PropertyID == 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	var prop models.Property
	if err := db.Where("external_id = ?", 101).First(&prop).Error; err != nil {
		t.Fatalf("property not stored: %v", err)
	}
	if prop.ID != res.PropertyID {
		t.Errorf("result property_id = %d, stored id = %d", res.PropertyID, prop.ID)
	}
	if prop.CompanyID == nil {
		t.Fatal("company was not resolved")
	}
	if prop.Price == nil || *prop.Price != 250000 {
		t.Errorf("price not mapped: %v", prop.Price)
	}

	var gallery []models.GalleryImage
	db.Where("property_id = ?", prop.ID).Order("sort_order ASC").Find(&gallery)
	if len(gallery) != 2 || gallery[0].URL != "a.jpg" || gallery[1].URL != "b.jpg" {
		t.Errorf("gallery mismatch: %+v", gallery)
	}

	var schools []models.NearbySchool
	db.Where("property_id = ?", prop.ID).Order("sort_order ASC").Find(&schools)
	if len(schools) != 2 || schools[0].Name != "Hilltop Elementary" || schools[1].SortOrder != 1 {
		t.Errorf("schools mismatch: %+v", schools)
	}
}

func TestReimportUpdatesExistingRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	first := svc.ImportBatch([]Item{validItem(202)})
	firstID := first.Results[0].PropertyID

	updated := validItem(202)
	updated.Basic.Price = floatPtr(240000)
	updated.Basic.Status = "pending"
	second := svc.ImportBatch([]Item{updated})

	if second.Results[0].PropertyID != firstID {
		t.Fatalf("property id changed on reimport: %d -> %d", firstID, second.Results[0].PropertyID)
	}

	var count int64
	db.Model(&models.Property{}).Where("external_id = ?", 202).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}

	var prop models.Property
	db.First(&prop, firstID)
	if prop.Price == nil || *prop.Price != 240000 {
		t.Errorf("price not overwritten: %v", prop.Price)
	}
	if prop.Status != "pending" {
		t.Errorf("status not overwritten: %s", prop.Status)
	}

	var changes []models.PriceChange
	db.Where("property_id = ?", firstID).Find(&changes)
	if len(changes) != 1 {
		t.Fatalf("expected one price change, got %d", len(changes))
	}
	if changes[0].Magnitude == nil || *changes[0].Magnitude != -10000 {
		t.Errorf("magnitude mismatch: %v", changes[0].Magnitude)
	}
}

func TestReimportNullsOmittedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(303)
	item.Basic.YearBuilt = intPtr(1999)
	item.Features = &FeaturesInput{HasPool: boolPtr(true)}
	svc.ImportBatch([]Item{item})

	bare := Item{Basic: &BasicInput{ID: 303}}
	svc.ImportBatch([]Item{bare})

	var prop models.Property
	db.Where("external_id = ?", 303).First(&prop)
	if prop.YearBuilt != nil {
		t.Errorf("year_built should be nulled, got %d", *prop.YearBuilt)
	}
	if prop.HasPool != nil {
		t.Errorf("has_pool should be nulled, got %v", *prop.HasPool)
	}
	if prop.CompanyID != nil {
		t.Errorf("company_id should be nulled, got %d", *prop.CompanyID)
	}
}

func TestGalleryFullReplace(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(404) // two gallery images
	svc.ImportBatch([]Item{item})

	item.Media.GalleryImages = []string{"c.jpg"}
	res := svc.ImportBatch([]Item{item})
	propID := res.Results[0].PropertyID

	var gallery []models.GalleryImage
	db.Where("property_id = ?", propID).Find(&gallery)
	if len(gallery) != 1 || gallery[0].URL != "c.jpg" {
		t.Fatalf("expected exactly [c.jpg], got %+v", gallery)
	}

	// Empty list clears prior rows rather than skipping the delete
	item.Media.GalleryImages = nil
	svc.ImportBatch([]Item{item})
	db.Where("property_id = ?", propID).Find(&gallery)
	if len(gallery) != 0 {
		t.Fatalf("expected empty gallery, got %d rows", len(gallery))
	}
}

func TestBatchIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	bad := Item{Company: &CompanyInput{Name: "Ghost Realty"}} // no basic section
	batch := svc.ImportBatch([]Item{validItem(501), bad, validItem(503)})

	if len(batch.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(batch.Results))
	}
	if !batch.Results[0].Succeeded() || !batch.Results[2].Succeeded() {
		t.Errorf("valid items should succeed: %+v", batch.Results)
	}
	if batch.Results[1].Error == "" {
		t.Error("invalid item should carry an error")
	}

	var count int64
	db.Model(&models.Property{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 persisted properties, got %d", count)
	}

	// The failed item's company creation must have rolled back with it
	var ghosts int64
	db.Model(&models.Company{}).Where("name = ?", "Ghost Realty").Count(&ghosts)
	if ghosts != 0 {
		t.Error("failed item's company row survived the rollback")
	}
}

func TestResultOrderMatchesInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	items := []Item{validItem(601), {Basic: &BasicInput{ID: 0}}, validItem(603), validItem(604)}
	batch := svc.ImportBatch(items)

	want := []int{601, 0, 603, 604}
	for i, res := range batch.Results {
		if res.ExternalID != want[i] {
			t.Errorf("results[%d].ExternalID = %d, want %d", i, res.ExternalID, want[i])
		}
	}
}

func TestCompanyDedup(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	a := validItem(701)
	b := validItem(702)
	b.Company.Address = "99 Other Ave" // metadata differs, name matches

	batch := svc.ImportBatch([]Item{a, b})
	if !batch.Results[0].Succeeded() || !batch.Results[1].Succeeded() {
		t.Fatalf("imports failed: %+v", batch.Results)
	}

	var companies []models.Company
	db.Where("name = ?", "Acme Realty").Find(&companies)
	if len(companies) != 1 {
		t.Fatalf("expected one company row, got %d", len(companies))
	}
	// First write wins on metadata
	if companies[0].Address != "1 Main St" {
		t.Errorf("company address = %q, want first import's value", companies[0].Address)
	}

	var props []models.Property
	db.Where("external_id IN ?", []int{701, 702}).Find(&props)
	for _, p := range props {
		if p.CompanyID == nil || *p.CompanyID != companies[0].ID {
			t.Errorf("property %d not linked to deduped company", p.ExternalID)
		}
	}
}

func TestNoCompanySkipsResolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(801)
	item.Company = nil
	batch := svc.ImportBatch([]Item{item})
	if !batch.Results[0].Succeeded() {
		t.Fatalf("import failed: %s", batch.Results[0].Error)
	}

	var prop models.Property
	db.Where("external_id = ?", 801).First(&prop)
	if prop.CompanyID != nil {
		t.Errorf("expected nil company id, got %d", *prop.CompanyID)
	}

	var count int64
	db.Model(&models.Company{}).Count(&count)
	if count != 0 {
		t.Errorf("no company row should exist, got %d", count)
	}
}

func TestZeroValuesPreserved(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(901)
	item.Basic.Price = floatPtr(0)
	item.ClimateFactors = &ClimateInput{FloodFactor: intPtr(0)}
	item.Features = &FeaturesInput{HasPool: boolPtr(false)}

	batch := svc.ImportBatch([]Item{item})
	if !batch.Results[0].Succeeded() {
		t.Fatalf("import failed: %s", batch.Results[0].Error)
	}

	var prop models.Property
	db.Where("external_id = ?", 901).First(&prop)
	if prop.Price == nil || *prop.Price != 0 {
		t.Errorf("zero price collapsed to null: %v", prop.Price)
	}
	if prop.FloodFactor == nil || *prop.FloodFactor != 0 {
		t.Errorf("zero flood factor collapsed to null: %v", prop.FloodFactor)
	}
	if prop.HasPool == nil || *prop.HasPool != false {
		t.Errorf("explicit false collapsed to null: %v", prop.HasPool)
	}
}

func TestChildSortOrderFollowsArray(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	item := validItem(1001)
	item.Interior = &InteriorInput{
		Rooms:   []string{"living room", "bedroom", "office"},
		Kitchen: &KitchenInput{Features: []string{"island", "gas range"}},
	}
	res := svc.ImportBatch([]Item{item})
	propID := res.Results[0].PropertyID

	var rooms []models.Room
	db.Where("property_id = ?", propID).Order("sort_order ASC").Find(&rooms)
	if len(rooms) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(rooms))
	}
	for i, name := range []string{"living room", "bedroom", "office"} {
		if rooms[i].Name != name || rooms[i].SortOrder != i {
			t.Errorf("rooms[%d] = %+v, want %q at order %d", i, rooms[i], name, i)
		}
	}
}

func boolPtr(v bool) *bool { return &v }
