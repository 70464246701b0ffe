package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// SchemaName is the component name of the request schema.
const SchemaName = "CreateUserForm"

// Option configures the generated document.
type Option func(*config)

type config struct {
	title     string
	version   string
	serverURL string
	endpoint  string
}

// WithTitle overrides the info title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithVersion overrides the info version.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			cfg.version = trimmed
		}
	}
}

// WithServerURL adds a server entry.
func WithServerURL(url string) Option {
	return func(cfg *config) {
		cfg.serverURL = strings.TrimSpace(url)
	}
}

// WithEndpoint overrides the path the form posts to.
func WithEndpoint(endpoint string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(endpoint); strings.HasPrefix(trimmed, "/") {
			cfg.endpoint = trimmed
		}
	}
}

// Document builds and validates the contract document.
func Document(ctx context.Context, options ...Option) (*openapi3.T, error) {
	cfg := config{
		title:    "Signup form",
		version:  "1.0.0",
		endpoint: "/",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	schema := CreateUserSchema()
	ref := &openapi3.SchemaRef{Ref: "#/components/schemas/" + SchemaName, Value: schema}

	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithDescription("Registration payload. Form posts use dotted keys such as techs.0.title.").
		WithContent(openapi3.Content{
			"application/json":                  openapi3.NewMediaType().WithSchemaRef(ref),
			"application/x-www-form-urlencoded": openapi3.NewMediaType().WithSchemaRef(ref),
		})

	html := openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/html"})
	post := openapi3.NewOperation()
	post.OperationID = "createUser"
	post.Summary = "Submit the registration form"
	post.RequestBody = &openapi3.RequestBodyRef{Value: body}
	post.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Form re-rendered with inline errors or the submitted output").
				WithContent(html),
		}),
	)

	get := openapi3.NewOperation()
	get.OperationID = "showForm"
	get.Summary = "Render the empty registration form"
	get.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Registration form").WithContent(html),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(cfg.endpoint, &openapi3.PathItem{Get: get, Post: post}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SchemaName: openapi3.NewSchemaRef("", schema),
			},
		},
	}
	if cfg.serverURL != "" {
		doc.Servers = openapi3.Servers{{URL: cfg.serverURL}}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// Marshal builds the document and encodes it as indented JSON.
func Marshal(ctx context.Context, options ...Option) ([]byte, error) {
	doc, err := Document(ctx, options...)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return data, nil
}

// CreateUserSchema describes the validated registration payload.
func CreateUserSchema() *openapi3.Schema {
	tech := openapi3.NewObjectSchema().
		WithProperty(model.TechTitleKey, openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty(model.TechExperienceKey, openapi3.NewFloat64Schema().
			WithMin(validation.MinExperience).
			WithMax(validation.MaxExperience))
	tech.Required = []string{model.TechTitleKey, model.TechExperienceKey}

	techs := openapi3.NewArraySchema().
		WithItems(tech).
		WithMinItems(validation.MinTechs)
	techs.Description = "At least one entry needs more than one year of experience; titles must be unique."

	email := openapi3.NewStringSchema().WithFormat("email").WithPattern(`@gmail\.com$`)

	schema := openapi3.NewObjectSchema().
		WithProperty(model.PathName, openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty(model.PathEmail, email).
		WithProperty(model.PathPassword, openapi3.NewStringSchema().WithMinLength(validation.MinPasswordLength)).
		WithProperty(model.PathTechs, techs)
	schema.Required = []string{model.PathName, model.PathEmail, model.PathPassword, model.PathTechs}
	return schema
}
