package mapping

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/searchplatform/searchadmin/client/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func props(t *testing.T, m Mapping) map[string]any {
	t.Helper()
	p, ok := m["properties"].(map[string]any)
	require.True(t, ok, "properties missing: %v", m)
	return p
}

func TestGenerate_TextField(t *testing.T) {
	t.Parallel()
	m, err := Generate(types.SearchObject{
		ObjectID: "product",
		Fields: []types.FieldConfig{{
			Name: "title", Type: types.FieldTypeText, Analyzer: "ik_max_word", Sortable: true, Boost: 2,
		}},
	})
	require.NoError(t, err)

	title := props(t, m)["title"].(map[string]any)
	assert.Equal(t, "text", title["type"])
	assert.Equal(t, "ik_max_word", title["analyzer"])
	assert.Equal(t, true, title["fielddata"])
	assert.Equal(t, float32(2), title["boost"])
	assert.Contains(t, title, "fields")
}

func TestGenerate_VectorField(t *testing.T) {
	t.Parallel()
	m, err := Generate(types.SearchObject{Fields: []types.FieldConfig{
		{Name: "embedding", Type: types.FieldTypeDenseVector, VectorDim: 768},
	}})
	require.NoError(t, err)

	v := props(t, m)["embedding"].(map[string]any)
	assert.Equal(t, "knn_vector", v["type"])
	assert.Equal(t, 768, v["dims"])
	assert.Equal(t, true, v["index"])
	assert.Equal(t, "cosine", v["similarity"])
}

func TestGenerate_AllTypes(t *testing.T) {
	t.Parallel()
	want := map[types.FieldType]string{
		types.FieldTypeText:        "text",
		types.FieldTypeKeyword:     "keyword",
		types.FieldTypeInteger:     "integer",
		types.FieldTypeLong:        "long",
		types.FieldTypeDouble:      "double",
		types.FieldTypeDate:        "date",
		types.FieldTypeBoolean:     "boolean",
		types.FieldTypeDenseVector: "knn_vector",
		"":                         "text",
		"GEO_POINT":                "text",
	}
	for ft, es := range want {
		assert.Equal(t, es, OpenSearchType(ft), "type %q", ft)
	}
}

func TestGenerate_PlainFieldsHaveOnlyType(t *testing.T) {
	t.Parallel()
	m, err := Generate(types.SearchObject{Fields: []types.FieldConfig{
		{Name: "price", Type: types.FieldTypeDouble, Sortable: true},
		{Name: "", Type: types.FieldTypeKeyword},
	}})
	require.NoError(t, err)

	p := props(t, m)
	require.Len(t, p, 1)
	assert.Equal(t, map[string]any{"type": "double"}, p["price"])
}

func TestGenerate_NoFields(t *testing.T) {
	t.Parallel()
	_, err := Generate(types.SearchObject{ObjectID: "empty"})
	require.True(t, errors.Is(err, types.ErrNoFields))
}

func TestIndexBody_JSON(t *testing.T) {
	t.Parallel()
	m, err := Generate(types.SearchObject{Fields: []types.FieldConfig{{Name: "sku", Type: types.FieldTypeKeyword}}})
	require.NoError(t, err)

	b, err := json.Marshal(m.IndexBody())
	require.NoError(t, err)
	assert.JSONEq(t, `{"mappings":{"properties":{"sku":{"type":"keyword"}}}}`, string(b))
}
