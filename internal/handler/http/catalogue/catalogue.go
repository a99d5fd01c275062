// Package catalogue serves GET /api, a self-description of every endpoint
// loaded from the embedded endpoints.yaml.
package catalogue

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"ncnews/internal/handler/http/respond"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

// Endpoint documents one route.
type Endpoint struct {
	Description     string   `yaml:"description" json:"description"`
	Queries         []string `yaml:"queries,omitempty" json:"queries,omitempty"`
	RequestBody     any      `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	ExampleResponse any      `yaml:"exampleResponse,omitempty" json:"exampleResponse,omitempty"`
}

// Response is the envelope for GET /api.
type Response struct {
	Endpoints map[string]Endpoint `json:"endpoints"`
}

// Load parses the embedded catalogue.
func Load() (map[string]Endpoint, error) {
	var endpoints map[string]Endpoint
	if err := yaml.Unmarshal(endpointsYAML, &endpoints); err != nil {
		return nil, fmt.Errorf("parse endpoints.yaml: %w", err)
	}
	return endpoints, nil
}

type Handler struct {
	Endpoints map[string]Endpoint
}

// ServeHTTP describes the API
// @Summary      Endpoint catalogue
// @Tags         api
// @Produce      json
// @Success      200 {object} Response
// @Router       /api [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, Response{Endpoints: h.Endpoints})
}

// Register mounts GET / on r, which is expected to be the /api sub-router.
func Register(r chi.Router) error {
	endpoints, err := Load()
	if err != nil {
		return err
	}
	r.Method(http.MethodGet, "/", Handler{Endpoints: endpoints})
	return nil
}
