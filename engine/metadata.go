package engine

import "sort"

// Well-known metadata keys populated by the engine.
const (
	MetaContentType     = "Content-Type"
	MetaContentLength   = "Content-Length"
	MetaContentLocation = "Content-Location"
	MetaResourceName    = "resourceName"
	MetaPageCount       = "Page-Count"
	MetaOCRLanguage     = "OCR-Language"
	MetaOCREngine       = "OCR-Engine"
)

// Metadata maps a string key to an ordered list of values. It is produced
// fresh by each extraction call; the engine never retains a reference.
type Metadata map[string][]string

// Add appends a value to the list stored under key.
func (m Metadata) Add(key, value string) {
	m[key] = append(m[key], value)
}

// Set replaces the values stored under key.
func (m Metadata) Set(key string, values ...string) {
	m[key] = values
}

// Get returns the first value stored under key, or "" when absent.
func (m Metadata) Get(key string) string {
	if vs := m[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns all values stored under key.
func (m Metadata) Values(key string) []string { return m[key] }

// Keys returns the metadata keys sorted lexicographically, giving the
// flattened boundary representation a deterministic order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// merge copies entries from seed that are not already present.
func (m Metadata) merge(seed Metadata) {
	for k, vs := range seed {
		if _, ok := m[k]; !ok {
			m[k] = vs
		}
	}
}
