package swagger_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

func TestOpenAPISpecIsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "api", "openapi.yml"))
	if err != nil {
		t.Fatalf("failed to load OpenAPI spec: %v", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("OpenAPI spec is invalid: %v", err)
	}
}

func TestOpenAPISpecCoversWorkflowRoutes(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "api", "openapi.yml"))
	if err != nil {
		t.Fatalf("failed to load OpenAPI spec: %v", err)
	}

	required := []string{
		"/auth/login",
		"/loans",
		"/loans/mine",
		"/loans/eligibility",
		"/loans/{id}/recommend",
		"/loans/{id}/approve",
		"/loans/{id}/reject",
		"/loans/{id}/contract",
		"/notifications",
	}

	for _, path := range required {
		if doc.Paths.Find(path) == nil {
			t.Errorf("spec is missing path %s", path)
		}
	}
}
