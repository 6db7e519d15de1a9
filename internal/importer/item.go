package importer

import "real-estate-marketplace/internal/models"

// Item is one element of an import batch: a property plus its nested
// company, media and feature data, in the shape the listing feed posts it.
// Sections are pointers so an absent section can be told apart from an
// empty one; numeric and flag fields are pointers so zero and false
// survive the round trip instead of collapsing into "not provided".
type Item struct {
	Company        *CompanyInput   `json:"company,omitempty"`
	Basic          *BasicInput     `json:"basic"`
	Location       *LocationInput  `json:"location,omitempty"`
	Media          *MediaInput     `json:"media,omitempty"`
	Features       *FeaturesInput  `json:"features,omitempty"`
	Utility        *UtilityInput   `json:"utility,omitempty"`
	Community      *CommunityInput `json:"community,omitempty"`
	ClimateFactors *ClimateInput   `json:"climateFactors,omitempty"`
	Special        []string        `json:"special,omitempty"`
	Interior       *InteriorInput  `json:"interior,omitempty"`
	NearbySchools  []SchoolInput   `json:"nearbySchools,omitempty"`
	Demo           bool            `json:"demo,omitempty"`
}

// CompanyInput describes the listing company; Name is the dedup key
type CompanyInput struct {
	Name    string `json:"name"`
	LogoImg string `json:"logoImg,omitempty"`
	Address string `json:"address,omitempty"`
}

// BasicInput carries the core listing facts; ID is the external identifier
type BasicInput struct {
	ID          int      `json:"id"`
	Type        string   `json:"type,omitempty"`
	Status      string   `json:"status,omitempty"`
	YearBuilt   *int     `json:"yearBuilt,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Area        *float64 `json:"area,omitempty"`
	Beds        *int     `json:"beds,omitempty"`
	Baths       *float64 `json:"baths,omitempty"`
	Description string   `json:"description,omitempty"`
}

type LocationInput struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address,omitempty"`
	City    string   `json:"city,omitempty"`
	State   string   `json:"state,omitempty"`
	Zip     string   `json:"zip,omitempty"`
}

type MediaInput struct {
	MainImg       string   `json:"mainImg,omitempty"`
	GalleryImages []string `json:"galleryImages,omitempty"`
}

type FeaturesInput struct {
	HasGarage   *bool    `json:"hasGarage,omitempty"`
	HasPool     *bool    `json:"hasPool,omitempty"`
	HasBasement *bool    `json:"hasBasement,omitempty"`
	PetFriendly *bool    `json:"petFriendly,omitempty"`
	Park        []string `json:"park,omitempty"`
}

type UtilityInput struct {
	Heating     string `json:"heating,omitempty"`
	Cooling     string `json:"cooling,omitempty"`
	WaterSource string `json:"waterSource,omitempty"`
	Sewer       string `json:"sewer,omitempty"`
}

type CommunityInput struct {
	Hoa      *HoaInput `json:"hoa,omitempty"`
	Features []string  `json:"features,omitempty"`
}

type HoaInput struct {
	Fee       *float64 `json:"fee,omitempty"`
	Frequency string   `json:"frequency,omitempty"`
}

type ClimateInput struct {
	FloodFactor *int `json:"floodFactor,omitempty"`
	FireFactor  *int `json:"fireFactor,omitempty"`
	HeatFactor  *int `json:"heatFactor,omitempty"`
	WindFactor  *int `json:"windFactor,omitempty"`
	AirFactor   *int `json:"airFactor,omitempty"`
}

type InteriorInput struct {
	Rooms   []string      `json:"rooms,omitempty"`
	Kitchen *KitchenInput `json:"kitchen,omitempty"`
}

type KitchenInput struct {
	Features []string `json:"features,omitempty"`
}

type SchoolInput struct {
	Name     string   `json:"name"`
	Distance *float64 `json:"distance,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

// externalID returns the feed identifier, or 0 when the basic section or
// the id itself is missing
func (it Item) externalID() int {
	if it.Basic == nil {
		return 0
	}
	return it.Basic.ID
}

func (it Item) galleryImages() []string {
	if it.Media == nil {
		return nil
	}
	return it.Media.GalleryImages
}

func (it Item) parkFeatures() []string {
	if it.Features == nil {
		return nil
	}
	return it.Features.Park
}

func (it Item) communityFeatures() []string {
	if it.Community == nil {
		return nil
	}
	return it.Community.Features
}

func (it Item) rooms() []string {
	if it.Interior == nil {
		return nil
	}
	return it.Interior.Rooms
}

func (it Item) kitchenFeatures() []string {
	if it.Interior == nil || it.Interior.Kitchen == nil {
		return nil
	}
	return it.Interior.Kitchen.Features
}

// toProperty flattens the nested item into a property row. Absent sections
// leave their columns at null/zero values, which the upsert writes as-is.
func (it Item) toProperty(companyID *uint) models.Property {
	p := models.Property{
		ExternalID: it.externalID(),
		CompanyID:  companyID,
		IsDemo:     it.Demo,
	}

	if b := it.Basic; b != nil {
		p.Type = b.Type
		p.Status = b.Status
		p.YearBuilt = b.YearBuilt
		p.Price = b.Price
		p.Area = b.Area
		p.Beds = b.Beds
		p.Baths = b.Baths
		p.Description = b.Description
	}

	if l := it.Location; l != nil {
		p.Lat = l.Lat
		p.Lng = l.Lng
		p.Address = l.Address
		p.City = l.City
		p.State = l.State
		p.Zip = l.Zip
	}

	if m := it.Media; m != nil {
		p.MainImg = m.MainImg
	}

	if f := it.Features; f != nil {
		p.HasGarage = f.HasGarage
		p.HasPool = f.HasPool
		p.HasBasement = f.HasBasement
		p.PetFriendly = f.PetFriendly
	}

	if u := it.Utility; u != nil {
		p.Heating = u.Heating
		p.Cooling = u.Cooling
		p.WaterSource = u.WaterSource
		p.Sewer = u.Sewer
	}

	if c := it.Community; c != nil && c.Hoa != nil {
		p.HoaFee = c.Hoa.Fee
		p.HoaFrequency = c.Hoa.Frequency
	}

	if cf := it.ClimateFactors; cf != nil {
		p.FloodFactor = cf.FloodFactor
		p.FireFactor = cf.FireFactor
		p.HeatFactor = cf.HeatFactor
		p.WindFactor = cf.WindFactor
		p.AirFactor = cf.AirFactor
	}

	return p
}
