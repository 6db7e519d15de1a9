package importer

// StatusUpserted marks a successfully imported item
const StatusUpserted = "upserted"

// ItemResult is the per-item outcome. Success carries the internal property
// id and status; failure carries the error message instead.
type ItemResult struct {
	ExternalID int    `json:"external_id"`
	PropertyID uint   `json:"property_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Succeeded reports whether the item was upserted
func (r ItemResult) Succeeded() bool {
	return r.Error == ""
}

// BatchResult is the outcome of a whole import batch. Results has the same
// length and order as the input array.
type BatchResult struct {
	Count   int          `json:"count"`
	Results []ItemResult `json:"results"`
}

// SucceededIDs returns the internal ids of all upserted items, in order
func (b BatchResult) SucceededIDs() []uint {
	ids := make([]uint, 0, len(b.Results))
	for _, r := range b.Results {
		if r.Succeeded() {
			ids = append(ids, r.PropertyID)
		}
	}
	return ids
}
