package app

import (
	"fmt"
	"net/http"
	"strings"
)

type translationReq struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

type translationResult struct {
	TranslatedText string `json:"translatedText"`
}

func (a App) translate(r *http.Request) *appResp {
	content, err := read(r.Body)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: text and targetLanguage", err)}
	}

	reqBody, err := readJSON[translationReq](content)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: text and targetLanguage", err)}
	}

	if reqBody.Text == "" || reqBody.TargetLanguage == "" {
		return &appResp{Error: appErr(ErrInvalidRequest, "Missing required fields: text and targetLanguage")}
	}

	prompt := genTranslationPrompt(*reqBody)

	text, err := a.GenerationRepo.Generate(r.Context(), prompt, genConfig(0.1, nil))

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Failed to translate text", err)}
	}

	translated := strings.TrimSpace(text)
	if translated == "" {
		return &appResp{Error: appErr(ErrUpstreamFormat, "Invalid response from AI")}
	}

	return &appResp{Code: 200, Body: translationResult{TranslatedText: translated}}
}

func genTranslationPrompt(reqBody translationReq) string {
	return fmt.Sprintf(
		`Translate the following text to %s. The original text is in Markdown format, so preserve the Markdown syntax (like ##, *, **, etc.) in the translated text. Return ONLY the translated Markdown text, without any introductory phrases, comments, or explanations.

TEXT TO TRANSLATE:
"""
%s
"""`, reqBody.TargetLanguage, reqBody.Text)
}
