package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type optimizationReq struct {
	OriginalPrompt string                 `json:"originalPrompt"`
	Purpose        string                 `json:"purpose"`
	OptionalParams map[string]interface{} `json:"optionalParams"`
}

func (a App) optimize(r *http.Request) *appResp {
	content, err := read(r.Body)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: originalPrompt and purpose", err)}
	}

	reqBody, err := readJSON[optimizationReq](content)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: originalPrompt and purpose", err)}
	}

	if reqBody.OriginalPrompt == "" || reqBody.Purpose == "" {
		return &appResp{Error: appErr(ErrInvalidRequest, "Missing required fields: originalPrompt and purpose")}
	}

	metaPrompt := genMetaPrompt(*reqBody)

	text, err := a.GenerationRepo.Generate(r.Context(), metaPrompt, genConfig(0.7, optimizationResultSchema()))

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Failed to optimize prompt", err)}
	}

	result, err := parseOptimizationResult([]byte(strings.TrimSpace(text)))

	if err != nil {
		return &appResp{Error: wrapErr(ErrUpstreamFormat, "Invalid response format from AI", err)}
	}

	return &appResp{Code: 200, Body: result}
}

func genMetaPrompt(reqBody optimizationReq) string {
	params, err := json.Marshal(reqBody.OptionalParams)

	if err != nil {
		params = []byte("{}")
	}

	example := "```markdown\n" +
		"## Image Generation Prompt: Whimsical Green Dog\n\n" +
		"A highly detailed, whimsical, and vibrant image of a **bright lime green Labrador puppy** joyfully eating a large, **vibrant strawberry ice cream cone**.\n\n" +
		"### Key Elements\n" +
		"* **Subject:** A cute, young Labrador puppy with fur that is a distinct, cheerful lime green.\n" +
		"* **Action:** The puppy is actively eating the ice cream, with its tongue out, a smear of pink ice cream on its snout.\n" +
		"* **Setting:** A sunny, enchanting park scene with a softly blurred background (bokeh effect), featuring lush green foliage and a clear, bright blue sky.\n" +
		"```"

	return fmt.Sprintf(
		`You are a world-class expert in prompt engineering. Your task is to optimize a user-provided prompt to maximize the quality and relevance of the results from AI systems.

CONTEXT:
- User's Goal/Purpose: %s
- Optional Parameters Provided: %s

ORIGINAL PROMPT:
"%s"

YOUR TASK:
Analyze the original prompt and the user's context. Rewrite and enhance the prompt by applying the best practices of prompt engineering. The final optimized prompt should be significantly more effective than the original.

---
**CRITICAL FORMATTING INSTRUCTIONS:**
Your entire response must be a single JSON object matching the provided schema.

1.  **optimized_prompt Field:** This field MUST be a string formatted using clear and structured Markdown for maximum readability. Follow these rules strictly:
    *   **Use Headings:** Employ '#' and '##' for titles and main sections.
    *   **Use Paragraphs:** Separate distinct ideas into paragraphs. A paragraph is created by leaving a blank line (i.e., pressing Enter twice). **DO NOT** output a single, long wall of text.
    *   **Use Lists:** Use bullet points ('* ' or '- ') for key elements, parameters, or steps. Ensure each list item is on a new line.
    *   **Use Bold Text:** Use '**bold text**' to highlight crucial keywords and concepts.

2.  **improvements Field:** This field MUST be an array of 3-5 ultra-short sentences (maximum 10-12 words each) in PLAIN TEXT. NO markdown, NO asterisks, NO special formatting. Each sentence should be direct and concise.
    Example: "Added specific technical parameters for better clarity"

3.  **tips Field:** This field MUST be an array of 3-5 brief, actionable sentences (maximum 12-15 words each) in PLAIN TEXT. NO markdown, NO asterisks, NO special formatting.
    Example: "Use specific numbers and measurements for more precise results"

4.  **techniques_applied Field:** This field MUST be an array of strings listing technique names only (e.g., 'Role Prompting', 'Chain-of-Thought').

**GOOD FORMATTING EXAMPLE FOR 'optimized_prompt':**
%s
---

Return your response ONLY in the specified JSON format.`,
		reqBody.Purpose, params, reqBody.OriginalPrompt, example)
}
