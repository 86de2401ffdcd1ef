package client

import (
	"github.com/searchplatform/searchadmin/client/internal/mapping"
	"github.com/searchplatform/searchadmin/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Backend entities
	Source       = types.Source
	SourceType   = types.SourceType
	SearchObject = types.SearchObject
	FieldConfig  = types.FieldConfig
	FieldType    = types.FieldType

	// Cluster responses
	ClusterHealth = types.ClusterHealth
	IndexInfo     = types.IndexInfo
	IndexList     = types.IndexList
	Acknowledged  = types.Acknowledged
	SearchResult  = types.SearchResult
	SearchHit     = types.SearchHit

	// Mapping is an OpenSearch "mappings" document.
	Mapping = mapping.Mapping
)

const (
	SourceTypeMySQL      = types.SourceTypeMySQL
	SourceTypePostgreSQL = types.SourceTypePostgreSQL
	SourceTypeOracle     = types.SourceTypeOracle
	SourceTypeFile       = types.SourceTypeFile

	FieldTypeText        = types.FieldTypeText
	FieldTypeKeyword     = types.FieldTypeKeyword
	FieldTypeInteger     = types.FieldTypeInteger
	FieldTypeLong        = types.FieldTypeLong
	FieldTypeDouble      = types.FieldTypeDouble
	FieldTypeDate        = types.FieldTypeDate
	FieldTypeBoolean     = types.FieldTypeBoolean
	FieldTypeDenseVector = types.FieldTypeDenseVector

	HealthGreen  = types.HealthGreen
	HealthYellow = types.HealthYellow
	HealthRed    = types.HealthRed
)

// GenerateMapping derives an OpenSearch mapping from a search object's
// field configuration. It returns ErrNoFields for an object without fields.
func GenerateMapping(obj SearchObject) (Mapping, error) {
	return mapping.Generate(obj)
}
