package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/google/uuid"
	"github.com/thedevsaddam/govalidator"
	"golang.org/x/crypto/bcrypt"
)

type registerReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userSummary struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type registerResult struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

type loginResult struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

func (a App) register(r *http.Request) *appResp {
	var reqBody registerReq
	rules := govalidator.MapData{
		"email":           []string{"required", "email"},
		"password":        []string{"required", "min:6"},
		"confirmPassword": []string{"required"},
	}
	opts := govalidator.Options{
		Request: r,
		Data:    &reqBody,
		Rules:   rules,
	}

	e := govalidator.New(opts).ValidateJSON()
	if len(e) != 0 {
		return &appResp{Error: appErr(ErrInvalidRequest, "Invalid registration data")}
	}

	if !passwordMeetsPolicy(reqBody.Password) {
		return &appResp{Error: appErr(ErrInvalidRequest, "Password must contain at least one uppercase letter, one lowercase letter and one number")}
	}

	if reqBody.Password != reqBody.ConfirmPassword {
		return &appResp{Error: appErr(ErrInvalidRequest, "Passwords do not match")}
	}

	existing, err := a.UserRepo.FindByEmail(reqBody.Email)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Internal server error", err)}
	} else if existing != nil {
		return &appResp{Error: appErr(ErrInvalidRequest, "A user with this email already exists")}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Internal server error", err)}
	}

	user := domain.User{
		Id:           uuid.New().String(),
		Email:        reqBody.Email,
		PasswordHash: string(hash),
	}

	err = a.UserRepo.Insert(&user)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Unable to create user", err)}
	}

	return &appResp{Code: 201, Body: registerResult{Message: "User created successfully", User: toUserSummary(user)}}
}

func (a App) login(r *http.Request) *appResp {
	content, err := read(r.Body)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: email and password", err)}
	}

	reqBody, err := readJSON[loginReq](content)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInvalidRequest, "Missing required fields: email and password", err)}
	}

	if reqBody.Email == "" || reqBody.Password == "" {
		return &appResp{Error: appErr(ErrInvalidRequest, "Missing required fields: email and password")}
	}

	user, err := a.UserRepo.FindByEmail(reqBody.Email)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Internal server error", err)}
	} else if user == nil {
		return &appResp{Error: appErr(ErrUnauthorized, "Invalid email or password")}
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqBody.Password))

	if err != nil {
		return &appResp{Error: appErr(ErrUnauthorized, "Invalid email or password")}
	}

	token, err := a.issueSession(user)

	if err != nil {
		return &appResp{Error: wrapErr(ErrInternal, "Internal server error", err)}
	}

	return &appResp{Code: 200, Body: loginResult{Token: token, User: toUserSummary(*user)}}
}

func passwordMeetsPolicy(password string) bool {
	return strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") &&
		strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(password, "0123456789")
}

func toUserSummary(user domain.User) userSummary {
	return userSummary{Id: user.Id, Email: user.Email, Name: user.Name, CreatedAt: user.CreatedAt}
}
