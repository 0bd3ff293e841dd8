package domain

type OptionalParameter struct {
	Id      string   `json:"id"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// PurposeCategory tags an optimization request with the user's goal and
// selects which optional parameters apply to it.
type PurposeCategory struct {
	Id         string              `json:"id"`
	Parameters []OptionalParameter `json:"parameters"`
}

var PurposeCategories = []PurposeCategory{
	{
		Id: "creative_text_generation",
		Parameters: []OptionalParameter{
			{Id: "tone", Type: "select", Options: []string{"default", "formal", "casual", "humorous", "professional"}},
		},
	},
	{
		Id: "image_generation",
		Parameters: []OptionalParameter{
			{Id: "style", Type: "text"},
			{Id: "creativity", Type: "slider"},
		},
	},
	{
		Id: "code_generation",
		Parameters: []OptionalParameter{
			{Id: "language", Type: "text"},
			{Id: "framework", Type: "text"},
		},
	},
	{
		Id: "analysis_insights",
		Parameters: []OptionalParameter{
			{Id: "analysisType", Type: "text"},
			{Id: "outputFormat", Type: "text"},
		},
	},
	{
		Id: "agents_assistants",
		Parameters: []OptionalParameter{
			{Id: "personality", Type: "text"},
			{Id: "context", Type: "text"},
		},
	},
}
