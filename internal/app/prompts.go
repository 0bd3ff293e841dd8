package app

import (
	"net/http"
	"unicode/utf8"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/google/uuid"
	"github.com/thedevsaddam/govalidator"
)

type createPromptReq struct {
	Title           string   `json:"title"`
	OptimizedPrompt string   `json:"optimizedPrompt"`
	Tips            []string `json:"tips"`
	Purpose         string   `json:"purpose"`
	IsPublic        bool     `json:"isPublic"`
}

type promptIdReq struct {
	Id string `json:"id"`
}

type updatePromptReq struct {
	Id              string    `json:"id"`
	Title           *string   `json:"title"`
	OptimizedPrompt *string   `json:"optimizedPrompt"`
	Tips            *[]string `json:"tips"`
	Purpose         *string   `json:"purpose"`
	IsPublic        *bool     `json:"isPublic"`
}

// requireSession gates every saved-prompt operation. Unauthenticated
// callers are rejected before the data store is touched.
func (a App) requireSession(r *http.Request) (*domain.Session, *appResp) {
	session := a.resolveSession(r)
	if session == nil {
		return nil, &appResp{Error: appErr(ErrUnauthorized, "No user information found in session")}
	}

	return session, nil
}

// resolveUser looks the session user up by id first and falls back to
// email. The fallback keeps stale sessions working when the id no longer
// matches a row but the email still does.
func (a App) resolveUser(session *domain.Session) (*domain.User, error) {
	if session.UserId != "" {
		user, err := a.UserRepo.FindById(session.UserId)

		if err != nil {
			return nil, err
		} else if user != nil {
			return user, nil
		}
	}

	if session.Email != "" {
		return a.UserRepo.FindByEmail(session.Email)
	}

	return nil, nil
}

func (a App) createPrompt(r *http.Request) *appResp {
	session, errResp := a.requireSession(r)
	if errResp != nil {
		return errResp
	}

	var reqBody createPromptReq
	rules := govalidator.MapData{
		"title":           []string{"required"},
		"optimizedPrompt": []string{"required"},
	}
	opts := govalidator.Options{
		Request: r,
		Data:    &reqBody,
		Rules:   rules,
	}

	e := govalidator.New(opts).ValidateJSON()
	if len(e) != 0 {
		return &appResp{Error: appErr(ErrInvalidRequest, "Title must be 1-200 characters and optimizedPrompt must not be empty")}
	}

	// The title bound counts characters, not bytes.
	if utf8.RuneCountInString(reqBody.Title) > 200 {
		return &appResp{Error: appErr(ErrInvalidRequest, "Title must be 1-200 characters and optimizedPrompt must not be empty")}
	}

	user, err := a.resolveUser(session)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to save prompt", err)}
	} else if user == nil {
		return &appResp{Error: appErr(ErrForbidden, "Associated user account was not found")}
	}

	prompt := domain.SavedPrompt{
		Id:              uuid.New().String(),
		Title:           reqBody.Title,
		OptimizedPrompt: reqBody.OptimizedPrompt,
		Tips:            reqBody.Tips,
		Purpose:         reqBody.Purpose,
		IsPublic:        reqBody.IsPublic,
		UserId:          user.Id,
	}

	err = a.PromptRepo.Insert(&prompt)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to save prompt", err)}
	}

	return &appResp{Code: 200, Body: prompt}
}

func (a App) getAllPrompts(r *http.Request) *appResp {
	session, errResp := a.requireSession(r)
	if errResp != nil {
		return errResp
	}

	prompts, err := a.PromptRepo.FindByUserId(session.UserId)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to load prompts", err)}
	}

	if prompts == nil {
		prompts = []domain.SavedPrompt{}
	}

	return &appResp{Code: 200, Body: prompts}
}

func (a App) getPromptById(r *http.Request) *appResp {
	session, errResp := a.requireSession(r)
	if errResp != nil {
		return errResp
	}

	reqBody, errResp := readIdReq(r)
	if errResp != nil {
		return errResp
	}

	prompt, err := a.PromptRepo.FindById(reqBody.Id)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to load prompt", err)}
	} else if prompt == nil {
		return &appResp{Error: appErr(ErrNotFound, "Prompt not found")}
	}

	if prompt.UserId != session.UserId && !prompt.IsPublic {
		return &appResp{Error: appErr(ErrForbidden, "You do not have permission to view this prompt")}
	}

	return &appResp{Code: 200, Body: prompt}
}

func (a App) updatePrompt(r *http.Request) *appResp {
	session, errResp := a.requireSession(r)
	if errResp != nil {
		return errResp
	}

	content, err := read(r.Body)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required field: id", err)}
	}

	reqBody, err := readJSON[updatePromptReq](content)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required field: id", err)}
	}

	if reqBody.Id == "" {
		return &appResp{Error: appErr(ErrInvalidRequest, "Missing required field: id")}
	}

	if reqBody.Title != nil && (*reqBody.Title == "" || utf8.RuneCountInString(*reqBody.Title) > 200) {
		return &appResp{Error: appErr(ErrInvalidRequest, "Title must be 1-200 characters")}
	}

	if reqBody.OptimizedPrompt != nil && *reqBody.OptimizedPrompt == "" {
		return &appResp{Error: appErr(ErrInvalidRequest, "Optimized prompt must not be empty")}
	}

	prompt, err := a.PromptRepo.FindById(reqBody.Id)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to update prompt", err)}
	}

	// A missing row and a foreign row are indistinguishable to the caller.
	if prompt == nil || prompt.UserId != session.UserId {
		return &appResp{Error: appErr(ErrForbidden, "You do not have permission to update this prompt")}
	}

	if reqBody.Title != nil {
		prompt.Title = *reqBody.Title
	}
	if reqBody.OptimizedPrompt != nil {
		prompt.OptimizedPrompt = *reqBody.OptimizedPrompt
	}
	if reqBody.Tips != nil {
		prompt.Tips = *reqBody.Tips
	}
	if reqBody.Purpose != nil {
		prompt.Purpose = *reqBody.Purpose
	}
	if reqBody.IsPublic != nil {
		prompt.IsPublic = *reqBody.IsPublic
	}

	err = a.PromptRepo.Update(prompt)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to update prompt", err)}
	}

	return &appResp{Code: 200, Body: prompt}
}

func (a App) deletePrompt(r *http.Request) *appResp {
	session, errResp := a.requireSession(r)
	if errResp != nil {
		return errResp
	}

	reqBody, errResp := readIdReq(r)
	if errResp != nil {
		return errResp
	}

	prompt, err := a.PromptRepo.FindById(reqBody.Id)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to delete prompt", err)}
	}

	if prompt == nil || prompt.UserId != session.UserId {
		return &appResp{Error: appErr(ErrForbidden, "You do not have permission to delete this prompt")}
	}

	err = a.PromptRepo.Delete(prompt.Id)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to delete prompt", err)}
	}

	return &appResp{Code: 200, Body: prompt}
}

func readIdReq(r *http.Request) (*promptIdReq, *appResp) {
	content, err := read(r.Body)

	if err != nil {
		return nil, &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required field: id", err)}
	}

	reqBody, err := readJSON[promptIdReq](content)

	if err != nil {
		return nil, &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required field: id", err)}
	}

	if reqBody.Id == "" {
		return nil, &appResp{Error: appErr(ErrInvalidRequest, "Missing required field: id")}
	}

	return reqBody, nil
}
