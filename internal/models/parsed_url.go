package models

// Query is an ordered mapping of query parameter names to their values.
// Keys keep the order of their first appearance; repeated keys keep every value.
type Query struct {
	keys   []string
	values map[string][]string
}

// NewQuery creates an empty query mapping.
func NewQuery() Query {
	return Query{values: make(map[string][]string)}
}

// Add appends a value for key.
func (q *Query) Add(key, value string) {
	if q.values == nil {
		q.values = make(map[string][]string)
	}
	if _, exists := q.values[key]; !exists {
		q.keys = append(q.keys, key)
	}
	q.values[key] = append(q.values[key], value)
}

// Get returns the first value for key, or "" when the key is absent.
func (q Query) Get(key string) string {
	if vs := q.values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Lookup returns the first value for key and whether the key is present.
func (q Query) Lookup(key string) (string, bool) {
	vs, ok := q.values[key]
	if !ok || len(vs) == 0 {
		return "", ok
	}
	return vs[0], true
}

// Has reports whether key is present, even with an empty value.
func (q Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Values returns a copy of every value for key.
func (q Query) Values(key string) []string {
	vs := q.values[key]
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Keys returns the keys in first-appearance order.
func (q Query) Keys() []string {
	out := make([]string, len(q.keys))
	copy(out, q.keys)
	return out
}

// Len returns the number of distinct keys.
func (q Query) Len() int {
	return len(q.keys)
}

// ParsedURL is the structured view of an accessed URL handed to classifiers.
type ParsedURL struct {
	// Raw is the URL as it was received.
	Raw string
	// Path is the percent-decoded path component.
	Path string
	// Hostname is the lower-cased host without port.
	Hostname string
	// Query holds the decoded query parameters.
	Query Query
}

// AccessMeta carries facts about the access event besides its URL.
type AccessMeta struct {
	// Size is the response size in bytes, nil when unknown.
	Size *int64
	// Fields holds any other raw input attribute.
	Fields map[string]string
}

// Field returns a raw metadata attribute.
func (m AccessMeta) Field(name string) string {
	return m.Fields[name]
}

// InputRecord is one access event to classify.
type InputRecord struct {
	URL  string
	Meta AccessMeta
}
