package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"agridash/internal/dto"
	"agridash/pkg/auth"

	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (*AuthService, *fakeUsers, *captureMailer) {
	t.Helper()
	users := newFakeUsers()
	m := &captureMailer{}
	jwt := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwt, m, "http://farm.test/", zap.NewNop()), users, m
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        "Ramesh",
		Email:           "Ramesh@Example.com",
		Phone:           "9876543210",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "Ramesh Kumar",
		FarmName:        "Green Acres",
		TotalLand:       "12.5",
	}
}

func TestRegisterNormalizesAndDefaults(t *testing.T) {
	svc, users, _ := newAuthService(t)

	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Username != "ramesh" || resp.User.Email != "ramesh@example.com" {
		t.Fatalf("user = %+v", resp.User)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.TokenType != "Bearer" {
		t.Fatalf("tokens = %+v", resp)
	}

	u, err := users.GetByEmail(context.Background(), "ramesh@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Location != "Delhi" || u.TotalLand != 12.5 {
		t.Fatalf("stored user = %+v", u)
	}
	if u.Password == "secret1" {
		t.Fatal("password stored in clear text")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		field  string
	}{
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, "password"},
		{"mismatch", func(r *dto.RegisterRequest) { r.ConfirmPassword = "secret2" }, "confirm_password"},
		{"land", func(r *dto.RegisterRequest) { r.TotalLand = "ten" }, "total_land"},
		{"username", func(r *dto.RegisterRequest) { r.Username = " " }, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuthService(t)
			req := validRegistration()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("err = %v, want validation error on %s", err, tt.field)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthService(t)
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := validRegistration()
	req.Username = "someone-else"
	req.Phone = "1111111111"
	_, err := svc.Register(context.Background(), req)
	var ue *UserExistsError
	if !errors.As(err, &ue) || ue.Field != "email" || !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want email conflict", err)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, id := range []string{"ramesh", "RAMESH@example.com"} {
		if _, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: id, Password: "secret1"}); err != nil {
			t.Fatalf("Login(%q): %v", id, err)
		}
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "ramesh", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Identifier: "nobody", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRequiresRefreshToken(t *testing.T) {
	svc, _, _ := newAuthService(t)
	resp, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), resp.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("access token accepted for refresh: %v", err)
	}
	if _, err := svc.RefreshToken(context.Background(), resp.RefreshToken); err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, m := newAuthService(t)
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ForgotPassword(context.Background(), "unknown@example.com"); err != nil {
		t.Fatalf("ForgotPassword unknown: %v", err)
	}
	if len(m.sent) != 0 {
		t.Fatal("mail sent for unknown address")
	}

	if err := svc.ForgotPassword(context.Background(), "ramesh@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(m.sent))
	}
	token := extractToken(t, m.sent[0].Body)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Token: token, Password: "newpass", ConfirmPassword: "newpass"})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "ramesh", Password: "newpass"}); err != nil {
		t.Fatalf("Login with new password: %v", err)
	}

	err = svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Token: token, Password: "again1", ConfirmPassword: "again1"})
	if !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("reused token err = %v", err)
	}
}

func TestResetTokenExpires(t *testing.T) {
	svc, _, m := newAuthService(t)
	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.ForgotPassword(context.Background(), "ramesh@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	token := extractToken(t, m.sent[0].Body)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{Token: token, Password: "newpass", ConfirmPassword: "newpass"})
	if !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("err = %v, want ErrInvalidResetToken", err)
	}
}

func extractToken(t *testing.T, body string) string {
	t.Helper()
	i := strings.Index(body, "http://farm.test/reset-password?")
	if i < 0 {
		t.Fatalf("no reset link in %q", body)
	}
	link := strings.Fields(body[i:])[0]
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	token := u.Query().Get("token")
	if len(token) < 40 {
		t.Fatalf("token too short: %q", token)
	}
	return token
}
