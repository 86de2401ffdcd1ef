package types

// ------------------------------
// Backend configuration entities
// ------------------------------

// SourceType identifies the kind of origin a data source reads from.
type SourceType string

const (
	SourceTypeMySQL      SourceType = "MYSQL"
	SourceTypePostgreSQL SourceType = "POSTGRESQL"
	SourceTypeOracle     SourceType = "ORACLE"
	SourceTypeFile       SourceType = "FILE"
)

// FieldType is the logical type of a search object field.
type FieldType string

const (
	FieldTypeText        FieldType = "TEXT"
	FieldTypeKeyword     FieldType = "KEYWORD"
	FieldTypeInteger     FieldType = "INTEGER"
	FieldTypeLong        FieldType = "LONG"
	FieldTypeDouble      FieldType = "DOUBLE"
	FieldTypeDate        FieldType = "DATE"
	FieldTypeBoolean     FieldType = "BOOLEAN"
	FieldTypeDenseVector FieldType = "DENSE_VECTOR"
)

// Source represents a data source whose records are indexed.
type Source struct {
	SourceID   string            `json:"sourceId" yaml:"sourceId"`
	SourceType SourceType        `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	Connection string            `json:"connection,omitempty" yaml:"connection,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// FieldConfig describes how a single field of a search object is indexed.
type FieldConfig struct {
	Name       string    `json:"name" yaml:"name"`
	Type       FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	Searchable bool      `json:"searchable" yaml:"searchable"`
	Filterable bool      `json:"filterable" yaml:"filterable"`
	Sortable   bool      `json:"sortable" yaml:"sortable"`
	Analyzer   string    `json:"analyzer,omitempty" yaml:"analyzer,omitempty"`
	Vectorize  bool      `json:"vectorize" yaml:"vectorize"`
	VectorType string    `json:"vectorType,omitempty" yaml:"vectorType,omitempty"`
	VectorDim  int       `json:"vectorDim" yaml:"vectorDim"`
	Boost      float32   `json:"boost" yaml:"boost"`
}

// SearchObject represents an indexed record type tied to an application key.
type SearchObject struct {
	ObjectID   string        `json:"objectId" yaml:"objectId"`
	SourceID   string        `json:"sourceId" yaml:"sourceId"`
	Table      string        `json:"table,omitempty" yaml:"table,omitempty"`
	PrimaryKey string        `json:"primaryKey,omitempty" yaml:"primaryKey,omitempty"`
	Fields     []FieldConfig `json:"fields" yaml:"fields"`
	AppKey     string        `json:"appKey,omitempty" yaml:"appKey,omitempty"`
}
