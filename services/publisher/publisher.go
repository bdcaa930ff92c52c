package publisher

// Observation is one crawled price point, published for external consumers
// (alerting bots, dashboards). The core never reads these back.
type Observation struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Date  string `json:"date"`
	Price string `json:"price"`
}

// Publisher represents a service for publishing price observations
type Publisher interface {
	// Publish publishes one observation
	Publish(obs Observation) error

	// Close closes the publisher connection
	Close() error
}
