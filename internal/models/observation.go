package models

// Observation is one entry in the observation API. The same payload
// shape backs journal entries, which reuse the observation endpoint.
type Observation struct {
	PubDate        string `json:"pub_date"`
	Thread         string `json:"thread"`
	Type           string `json:"type,omitempty"`
	Situation      string `json:"situation"`
	Interpretation string `json:"interpretation"`
	Approach       string `json:"approach"`
}

// ObservationPage is one page of the paginated observation listing.
type ObservationPage struct {
	Results []Observation `json:"results"`
	Next    string        `json:"next"`
}
