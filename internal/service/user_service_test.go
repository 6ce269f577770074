package service

import (
	"context"
	"errors"
	"stackunderflow/internal/api/dto"
	"stackunderflow/internal/model"
	"testing"
)

func newUserTestEnv(users ...*model.User) (UserService, *fakeUserRepo) {
	userRepo := newFakeUserRepo(users...)
	return NewUserService(userRepo, newFakeReputationLogRepo()), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newUserTestEnv()
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterDTO{
		Username:   "gopher",
		Email:      "gopher@example.com",
		Password:   "s3cret!",
		Profession: "后端开发",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, _ := repo.GetUserByUsername(ctx, "gopher")
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Password == "s3cret!" {
		t.Fatal("password stored in plaintext")
	}

	token, err := svc.Login(ctx, &dto.LoginDTO{Username: "gopher", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserTestEnv()
	ctx := context.Background()

	reg := &dto.RegisterDTO{Username: "gopher", Email: "a@b.c", Password: "pw"}
	if err := svc.Register(ctx, reg); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := svc.Register(ctx, &dto.RegisterDTO{Username: "gopher", Email: "d@e.f", Password: "pw"})
	if !errors.Is(err, ErrUserUsernameExist) {
		t.Fatalf("error = %v, want ErrUserUsernameExist", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newUserTestEnv()
	ctx := context.Background()

	if err := svc.Register(ctx, &dto.RegisterDTO{Username: "gopher", Email: "a@b.c", Password: "right"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginDTO{Username: "gopher", Password: "wrong"}); !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("error = %v, want ErrPasswordIncorrect", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginDTO{Username: "nobody", Password: "right"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestGetUserInfoNotFound(t *testing.T) {
	svc, _ := newUserTestEnv()

	if _, err := svc.GetUserInfo(context.Background(), 404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}
