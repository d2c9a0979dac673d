package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocumentPaths(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}
	if doc.BasePath != "/" {
		t.Errorf("basePath = %q", doc.BasePath)
	}

	want := map[string]string{
		"/health":                              "get",
		"/api/auth/validate":                   "post",
		"/api/meals/analyze":                   "put",
		"/api/meals/{mealId}":                  "patch",
		"/api/users/{userId}":                  "post",
		"/api/users/{userId}/goals/active":     "get",
		"/api/users/{userId}/analytics/weekly": "get",
	}
	for path, method := range want {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("missing path %s", path)
			continue
		}
		if _, ok := ops[method]; !ok {
			t.Errorf("%s has no %s operation", path, method)
		}
	}
}
