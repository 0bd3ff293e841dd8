package app

import (
	"context"
	"errors"
	"time"

	"github.com/davidmrt/promptforge/internal/domain"
)

type fakeGenerationRepo struct {
	response string
	err      error

	calls   int
	prompts []string
	configs []domain.GenerationConfig
}

func (r *fakeGenerationRepo) Generate(ctx context.Context, prompt string, config domain.GenerationConfig) (string, error) {
	r.calls++
	r.prompts = append(r.prompts, prompt)
	r.configs = append(r.configs, config)

	if r.err != nil {
		return "", r.err
	}

	return r.response, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*domain.User{}}
	for _, u := range users {
		r.users[u.Id] = u
	}
	return r
}

func (r *fakeUserRepo) Insert(user *domain.User) error {
	if r.err != nil {
		return r.err
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Id] = user
	return nil
}

func (r *fakeUserRepo) FindById(id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakePromptRepo struct {
	prompts map[string]*domain.SavedPrompt
	err     error
	clock   time.Time
}

func newFakePromptRepo(prompts ...*domain.SavedPrompt) *fakePromptRepo {
	r := &fakePromptRepo{prompts: map[string]*domain.SavedPrompt{}, clock: time.Now()}
	for _, p := range prompts {
		if p.CreatedAt.IsZero() {
			r.clock = r.clock.Add(time.Second)
			p.CreatedAt = r.clock
		}
		r.prompts[p.Id] = p
	}
	return r
}

func (r *fakePromptRepo) Insert(prompt *domain.SavedPrompt) error {
	if r.err != nil {
		return r.err
	}

	r.clock = r.clock.Add(time.Second)
	prompt.CreatedAt = r.clock
	prompt.UpdatedAt = r.clock
	r.prompts[prompt.Id] = prompt
	return nil
}

func (r *fakePromptRepo) FindById(id string) (*domain.SavedPrompt, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.prompts[id], nil
}

func (r *fakePromptRepo) FindByUserId(userId string) ([]domain.SavedPrompt, error) {
	if r.err != nil {
		return nil, r.err
	}

	var result []domain.SavedPrompt
	for _, p := range r.prompts {
		if p.UserId == userId {
			result = append(result, *p)
		}
	}

	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}

	return result, nil
}

func (r *fakePromptRepo) Update(prompt *domain.SavedPrompt) error {
	if r.err != nil {
		return r.err
	}

	if _, ok := r.prompts[prompt.Id]; !ok {
		return errors.New("prompt row missing")
	}

	r.prompts[prompt.Id] = prompt
	return nil
}

func (r *fakePromptRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}

	delete(r.prompts, id)
	return nil
}
