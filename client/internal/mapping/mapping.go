// Package mapping derives OpenSearch index mappings from search object
// field configuration.
package mapping

import (
	"github.com/searchplatform/searchadmin/client/internal/types"
)

// Mapping is an index mapping body: {"properties": {...}}.
type Mapping map[string]any

// IndexBody wraps m the way PUT /{index} expects it.
func (m Mapping) IndexBody() map[string]any {
	return map[string]any{"mappings": map[string]any(m)}
}

// Generate builds the mapping for obj. Fields without a name are skipped.
func Generate(obj types.SearchObject) (Mapping, error) {
	if len(obj.Fields) == 0 {
		return nil, types.ErrNoFields
	}
	props := make(map[string]any, len(obj.Fields))
	for _, f := range obj.Fields {
		if f.Name == "" {
			continue
		}
		props[f.Name] = fieldMapping(f)
	}
	return Mapping{"properties": props}, nil
}

func fieldMapping(f types.FieldConfig) map[string]any {
	m := map[string]any{"type": OpenSearchType(f.Type)}

	switch f.Type {
	case types.FieldTypeText:
		if f.Analyzer != "" {
			m["analyzer"] = f.Analyzer
		}
		if f.Sortable || f.Filterable {
			m["fielddata"] = true
		}
	case types.FieldTypeDenseVector:
		if f.VectorDim > 0 {
			m["dims"] = f.VectorDim
		}
		m["index"] = true
		m["similarity"] = "cosine"
	}

	if f.Boost > 1.0 {
		m["boost"] = f.Boost
		m["fields"] = map[string]any{
			"keyword": map[string]any{"type": "keyword", "ignore_above": 256},
		}
	}
	return m
}

// OpenSearchType maps a field type to the OpenSearch field type. Unknown or
// empty types index as text.
func OpenSearchType(t types.FieldType) string {
	switch t {
	case types.FieldTypeKeyword:
		return "keyword"
	case types.FieldTypeInteger:
		return "integer"
	case types.FieldTypeLong:
		return "long"
	case types.FieldTypeDouble:
		return "double"
	case types.FieldTypeDate:
		return "date"
	case types.FieldTypeBoolean:
		return "boolean"
	case types.FieldTypeDenseVector:
		return "knn_vector"
	default:
		return "text"
	}
}
