package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"real-estate-marketplace/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// FilterParams narrows a search query
type FilterParams struct {
	Query       string
	MinPrice    *float64
	MaxPrice    *float64
	MinBeds     *int
	City        string
	Types       []string
	Status      string
	IncludeDemo bool
	SortBy      string
	Limit       int64
	Offset      int64
}

// BuildFilter renders the params as a Meilisearch filter expression
func BuildFilter(params FilterParams) string {
	var filters []string

	if params.MinPrice != nil {
		filters = append(filters, fmt.Sprintf("price >= %g", *params.MinPrice))
	}
	if params.MaxPrice != nil {
		filters = append(filters, fmt.Sprintf("price <= %g", *params.MaxPrice))
	}
	if params.MinBeds != nil {
		filters = append(filters, fmt.Sprintf("beds >= %d", *params.MinBeds))
	}
	if params.City != "" {
		filters = append(filters, fmt.Sprintf("city = '%s'", params.City))
	}
	if len(params.Types) > 0 {
		typeFilters := make([]string, len(params.Types))
		for i, t := range params.Types {
			typeFilters[i] = fmt.Sprintf("type = '%s'", t)
		}
		filters = append(filters, fmt.Sprintf("(%s)", strings.Join(typeFilters, " OR ")))
	}
	if params.Status != "" {
		filters = append(filters, fmt.Sprintf("status = '%s'", params.Status))
	}
	if !params.IncludeDemo {
		filters = append(filters, "is_demo = false")
	}

	return strings.Join(filters, " AND ")
}

// FilterSearch performs a filtered search against the properties index
func (s *SearchClient) FilterSearch(params FilterParams) ([]models.Property, int64, error) {
	if params.Limit == 0 {
		params.Limit = 20
	}

	searchReq := &meilisearch.SearchRequest{
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	if filterStr := BuildFilter(params); filterStr != "" {
		searchReq.Filter = filterStr
	}
	if params.SortBy != "" {
		searchReq.Sort = []string{params.SortBy}
	}

	searchRes, err := s.client.Index(s.index).Search(params.Query, searchReq)
	if err != nil {
		return nil, 0, err
	}

	// Round-trip each hit through JSON into the model type
	var properties []models.Property
	for _, hit := range searchRes.Hits {
		hitJSON, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var property models.Property
		if err := json.Unmarshal(hitJSON, &property); err != nil {
			continue
		}

		properties = append(properties, property)
	}

	return properties, searchRes.EstimatedTotalHits, nil
}
