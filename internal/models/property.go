package models

import "time"

// Property is a marketplace listing. ExternalID is the feed-supplied identifier
// that repeat imports are matched on; ID is the generated primary key that the
// rest of the API refers to.
type Property struct {
	ID         uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID int   `gorm:"not null;uniqueIndex" json:"external_id"`
	CompanyID  *uint `gorm:"index" json:"company_id,omitempty"`

	// Basic facts
	Type        string   `gorm:"type:varchar(50);index" json:"type,omitempty"`
	Status      string   `gorm:"type:varchar(50);index" json:"status,omitempty"`
	YearBuilt   *int     `gorm:"type:int" json:"year_built,omitempty"`
	Price       *float64 `gorm:"type:decimal(14,2);index" json:"price,omitempty"`
	Area        *float64 `gorm:"type:decimal(12,2)" json:"area,omitempty"`
	Beds        *int     `gorm:"type:int;index" json:"beds,omitempty"`
	Baths       *float64 `gorm:"type:decimal(4,1)" json:"baths,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`

	// Location
	Lat     *float64 `gorm:"type:decimal(10,7)" json:"lat,omitempty"`
	Lng     *float64 `gorm:"type:decimal(10,7)" json:"lng,omitempty"`
	Address string   `gorm:"type:text" json:"address,omitempty"`
	City    string   `gorm:"type:varchar(100);index" json:"city,omitempty"`
	State   string   `gorm:"type:varchar(50)" json:"state,omitempty"`
	Zip     string   `gorm:"type:varchar(20)" json:"zip,omitempty"`

	// Media
	MainImg string `gorm:"type:text" json:"main_img,omitempty"`

	// Amenity flags. Pointers keep "not provided" distinct from false.
	HasGarage   *bool `json:"has_garage,omitempty"`
	HasPool     *bool `json:"has_pool,omitempty"`
	HasBasement *bool `json:"has_basement,omitempty"`
	PetFriendly *bool `json:"pet_friendly,omitempty"`

	// Utilities
	Heating     string `gorm:"type:varchar(100)" json:"heating,omitempty"`
	Cooling     string `gorm:"type:varchar(100)" json:"cooling,omitempty"`
	WaterSource string `gorm:"type:varchar(100)" json:"water_source,omitempty"`
	Sewer       string `gorm:"type:varchar(100)" json:"sewer,omitempty"`

	// HOA
	HoaFee       *float64 `gorm:"type:decimal(10,2)" json:"hoa_fee,omitempty"`
	HoaFrequency string   `gorm:"type:varchar(20)" json:"hoa_frequency,omitempty"`

	// Climate risk scores. Zero is a valid score, hence pointers.
	FloodFactor *int `gorm:"type:int" json:"flood_factor,omitempty"`
	FireFactor  *int `gorm:"type:int" json:"fire_factor,omitempty"`
	HeatFactor  *int `gorm:"type:int" json:"heat_factor,omitempty"`
	WindFactor  *int `gorm:"type:int" json:"wind_factor,omitempty"`
	AirFactor   *int `gorm:"type:int" json:"air_factor,omitempty"`

	IsDemo bool `gorm:"not null;default:false;index" json:"is_demo"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Property) TableName() string {
	return "properties"
}
