package collections

import "github.com/JaimeStill/promptlab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Delete *openapi.Operation
}

// Spec holds the OpenAPI operations for collection endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List collections",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collections in creation order", "CollectionList"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get a collection",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Collection ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection", "Collection"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create a collection",
		RequestBody: openapi.RequestBodyJSON("CollectionCreate", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created collection", "Collection"),
			400: openapi.ResponseRef("BadRequest"),
			422: openapi.ResponseRef("Unprocessable"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete a collection",
		Description: "Prompts in the collection are kept and their collection_id is cleared.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Collection ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Collection deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Collection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string", Description: "Nullable"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "name", "created_at"},
		},
		"CollectionCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string", MinLength: openapi.IntPtr(1), MaxLength: openapi.IntPtr(NameMaxLength)},
				"description": {Type: "string", MaxLength: openapi.IntPtr(DescriptionMaxLength)},
			},
			Required: []string{"name"},
		},
		"CollectionList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"collections": {Type: "array", Items: openapi.SchemaRef("Collection")},
				"total":       {Type: "integer"},
			},
			Required: []string{"collections", "total"},
		},
	}
}
