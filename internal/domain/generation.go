package domain

// OptimizationResult is the structured payload the generation capability
// must return for an optimization run. All four fields are required; a
// payload missing any of them is rejected as a whole.
type OptimizationResult struct {
	OptimizedPrompt   string   `json:"optimized_prompt"`
	Improvements      []string `json:"improvements"`
	Tips              []string `json:"tips"`
	TechniquesApplied []string `json:"techniques_applied"`
}

type SchemaType string

const (
	TypeObject SchemaType = "OBJECT"
	TypeString SchemaType = "STRING"
	TypeArray  SchemaType = "ARRAY"
)

// Schema is the response-schema constraint passed to the generation
// capability, mirroring the subset of OpenAPI types Gemini accepts.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type GenerationConfig struct {
	Temperature      float32
	ResponseMIMEType string
	ResponseSchema   *Schema
}
