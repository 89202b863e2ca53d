package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc_ListsEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := map[string]string{
		"/healthz":                  "get",
		"/statuses":                 "get",
		"/statuses/describe":        "get",
		"/statuses/next":            "get",
		"/statuses/progress":        "get",
		"/loads/{id}/status":        "get",
		"/loads/{id}/advance":       "post",
		"/loads/{id}/force-advance": "post",
		"/tiers":                    "get",
		"/usage/{account}/events":   "post",
		"/usage/{account}/bill":     "get",
		"/usage/{account}/tier":     "put",
		"/usage/{account}":          "delete",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		assert.Contains(t, doc.Paths[path], method, path)
	}

	for _, name := range []string{"domain.Bill", "domain.Event", "domain.StatusView", "handler.RecordEventRequest"} {
		assert.Contains(t, doc.Definitions, name)
	}
}
