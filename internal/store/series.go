package store

// Series is an ordered date→price mapping. Observation order is significant:
// "latest" and the moving average read the sequence as it was appended, so
// the series never re-sorts. Re-adding a known date overwrites the value in
// place and keeps its position.
type Series struct {
	dates  []string
	values map[string]string
}

// NewSeries returns an empty series.
func NewSeries() *Series {
	return &Series{values: make(map[string]string)}
}

// Add inserts or overwrites the observation for date.
func (s *Series) Add(date, value string) {
	if _, ok := s.values[date]; !ok {
		s.dates = append(s.dates, date)
	}
	s.values[date] = value
}

// Delete removes the observation for date if present.
func (s *Series) Delete(date string) bool {
	if _, ok := s.values[date]; !ok {
		return false
	}
	delete(s.values, date)
	for i, d := range s.dates {
		if d == date {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether an observation exists for date.
func (s *Series) Has(date string) bool {
	_, ok := s.values[date]
	return ok
}

// Get returns the observation for date.
func (s *Series) Get(date string) (string, bool) {
	v, ok := s.values[date]
	return v, ok
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.dates)
}

// Dates returns the date labels in observation order.
func (s *Series) Dates() []string {
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// Values returns the prices in observation order.
func (s *Series) Values() []string {
	out := make([]string, 0, len(s.dates))
	for _, d := range s.dates {
		out = append(out, s.values[d])
	}
	return out
}
