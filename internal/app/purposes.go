package app

import (
	"net/http"

	"github.com/davidmrt/promptforge/internal/domain"
)

// listPurposes serves the fixed purpose catalog so clients can render the
// optional parameters that apply to each category.
func (a App) listPurposes(r *http.Request) *appResp {
	return &appResp{Code: 200, Body: domain.PurposeCategories}
}
