package database

import (
	"real-estate-marketplace/internal/models"

	"gorm.io/gorm"
)

// GormDB wraps the shared database handle. It is constructed once at
// process start and closed on shutdown.
type GormDB struct {
	db *gorm.DB
}

// NewGormDBFromDB creates a GormDB wrapper from an existing gorm.DB instance
func NewGormDBFromDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

// DB returns the underlying gorm.DB instance
func (gdb *GormDB) DB() *gorm.DB {
	return gdb.db
}

// Close closes the underlying connection pool
func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates tables using GORM AutoMigrate
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
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
		&models.PurgeLog{},
	)
}

// PropertyFilters narrows and sorts property listings
type PropertyFilters struct {
	City        string
	State       string
	Type        string
	Status      string
	MinPrice    *float64
	MaxPrice    *float64
	MinBeds     *int
	MaxBeds     *int
	CompanyID   *uint
	IncludeDemo bool
	SortBy      string
	Limit       int
	Offset      int
}

// PropertyPage is one page of filtered listings
type PropertyPage struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// ListProperties retrieves a filtered, sorted page of properties
func (gdb *GormDB) ListProperties(f PropertyFilters) (*PropertyPage, error) {
	q := gdb.db.Model(&models.Property{})

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinBeds != nil {
		q = q.Where("beds >= ?", *f.MinBeds)
	}
	if f.MaxBeds != nil {
		q = q.Where("beds <= ?", *f.MaxBeds)
	}
	if f.CompanyID != nil {
		q = q.Where("company_id = ?", *f.CompanyID)
	}
	if !f.IncludeDemo {
		q = q.Where("is_demo = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	var properties []models.Property
	err := q.Order(orderClause(f.SortBy)).Limit(limit).Offset(f.Offset).Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return &PropertyPage{
		Properties: properties,
		Total:      total,
		Limit:      limit,
		Offset:     f.Offset,
	}, nil
}

// orderClause maps a sort parameter to an ORDER BY clause.
// CASE puts NULL prices/years last regardless of direction.
func orderClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "CASE WHEN price IS NULL THEN 1 ELSE 0 END, price ASC"
	case "price_desc":
		return "CASE WHEN price IS NULL THEN 1 ELSE 0 END, price DESC"
	case "year_built_desc":
		return "CASE WHEN year_built IS NULL THEN 1 ELSE 0 END, year_built DESC"
	case "area_desc":
		return "CASE WHEN area IS NULL THEN 1 ELSE 0 END, area DESC"
	case "oldest":
		return "created_at ASC"
	default:
		// Newest listings first
		return "created_at DESC"
	}
}

// GetAllProperties retrieves every property (used by full reindex)
func (gdb *GormDB) GetAllProperties() ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// GetPropertyByID retrieves a property by internal id
func (gdb *GormDB) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	err := gdb.db.Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetPropertyByExternalID retrieves a property by the feed identifier
func (gdb *GormDB) GetPropertyByExternalID(externalID int) (*models.Property, error) {
	var property models.Property
	err := gdb.db.Where("external_id = ?", externalID).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetPropertiesByIDs retrieves the given properties in one query
func (gdb *GormDB) GetPropertiesByIDs(ids []uint) ([]models.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var properties []models.Property
	err := gdb.db.Where("id IN ?", ids).Find(&properties).Error
	return properties, err
}

// PropertyChildren bundles every dependent collection of one property
type PropertyChildren struct {
	Gallery           []models.GalleryImage     `json:"gallery"`
	ParkFeatures      []models.ParkFeature      `json:"park_features"`
	Specials          []models.Special          `json:"specials"`
	Rooms             []models.Room             `json:"rooms"`
	KitchenFeatures   []models.KitchenFeature   `json:"kitchen_features"`
	CommunityFeatures []models.CommunityFeature `json:"community_features"`
	NearbySchools     []models.NearbySchool     `json:"nearby_schools"`
}

// GetPropertyChildren loads all child collections in import order
func (gdb *GormDB) GetPropertyChildren(propertyID uint) (*PropertyChildren, error) {
	children := &PropertyChildren{}
	byOrder := func() *gorm.DB {
		return gdb.db.Where("property_id = ?", propertyID).Order("sort_order ASC")
	}

	if err := byOrder().Find(&children.Gallery).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.ParkFeatures).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.Specials).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.Rooms).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.KitchenFeatures).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.CommunityFeatures).Error; err != nil {
		return nil, err
	}
	if err := byOrder().Find(&children.NearbySchools).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// GetPriceHistory retrieves recorded price changes for a property
func (gdb *GormDB) GetPriceHistory(propertyID uint, limit int) ([]models.PriceChange, error) {
	var changes []models.PriceChange
	q := gdb.db.Where("property_id = ?", propertyID).Order("detected_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&changes).Error
	return changes, err
}

// ListCompanies retrieves all companies
func (gdb *GormDB) ListCompanies() ([]models.Company, error) {
	var companies []models.Company
	err := gdb.db.Order("name ASC").Find(&companies).Error
	return companies, err
}

// GetCompanyByID retrieves a company by id
func (gdb *GormDB) GetCompanyByID(id uint) (*models.Company, error) {
	var company models.Company
	err := gdb.db.Where("id = ?", id).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompanyProperties retrieves all listings owned by a company
func (gdb *GormDB) GetCompanyProperties(companyID uint) ([]models.Property, error) {
	var properties []models.Property
	err := gdb.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&properties).Error
	return properties, err
}
