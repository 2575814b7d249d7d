package prompts

import "github.com/JaimeStill/promptlab/pkg/openapi"

type spec struct {
	List      *openapi.Operation
	Find      *openapi.Operation
	Variables *openapi.Operation
	Create    *openapi.Operation
	Update    *openapi.Operation
	Patch     *openapi.Operation
	Delete    *openapi.Operation
}

var idParam = openapi.PathParam("id", "Prompt ID")

// Spec holds the OpenAPI operations for prompt endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List prompts",
		Description: "Filters apply in order collection, then search. Results are ordered by created_at, newest first.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("collection_id", "string", "Only prompts in this collection", false),
			openapi.QueryParam("search", "string", "Case-insensitive match on title or description", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Matching prompts", "PromptList"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get a prompt",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Prompt", "Prompt"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Variables: &openapi.Operation{
		Summary:    "List template variables",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Variables found in the prompt content", "PromptVariables"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create a prompt",
		RequestBody: openapi.RequestBodyJSON("PromptWrite", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			422: openapi.ResponseRef("Unprocessable"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Replace a prompt",
		Description: "Omitted description and collection_id are cleared.",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("PromptWrite", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("Unprocessable"),
		},
	},
	Patch: &openapi.Operation{
		Summary:     "Partially update a prompt",
		Description: "Omitted fields are kept. Null clears description or collection_id.",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("PromptPatch", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("Unprocessable"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete a prompt",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Prompt deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"title":         {Type: "string"},
				"content":       {Type: "string"},
				"description":   {Type: "string", Description: "Nullable"},
				"collection_id": {Type: "string", Description: "Nullable"},
				"created_at":    {Type: "string", Format: "date-time"},
				"updated_at":    {Type: "string", Format: "date-time"},
			},
			Required: []string{"id", "title", "content", "created_at", "updated_at"},
		},
		"PromptWrite": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         {Type: "string", MinLength: openapi.IntPtr(1), MaxLength: openapi.IntPtr(TitleMaxLength)},
				"content":       {Type: "string", MinLength: openapi.IntPtr(1)},
				"description":   {Type: "string", MaxLength: openapi.IntPtr(DescriptionMaxLength)},
				"collection_id": {Type: "string"},
			},
			Required: []string{"title", "content"},
		},
		"PromptPatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         {Type: "string", MinLength: openapi.IntPtr(1), MaxLength: openapi.IntPtr(TitleMaxLength)},
				"content":       {Type: "string", MinLength: openapi.IntPtr(1)},
				"description":   {Type: "string", MaxLength: openapi.IntPtr(DescriptionMaxLength)},
				"collection_id": {Type: "string"},
			},
		},
		"PromptList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"prompts": {Type: "array", Items: openapi.SchemaRef("Prompt")},
				"total":   {Type: "integer"},
			},
			Required: []string{"prompts", "total"},
		},
		"PromptVariables": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"variables": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"valid":     {Type: "boolean", Description: "Trimmed content has at least 10 characters"},
			},
			Required: []string{"id", "variables", "valid"},
		},
	}
}
