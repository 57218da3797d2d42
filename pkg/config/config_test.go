package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODEL_TYPE", "")
	t.Setenv("MODEL_PATH", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.Type != "knn" || cfg.Model.ModelPath != "models/knn_model.json" {
		t.Fatalf("model config = %+v", cfg.Model)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Fatalf("jwt expiration = %v", cfg.JWT.Expiration)
	}
}

func TestLoadClassifierModelPath(t *testing.T) {
	t.Setenv("MODEL_TYPE", "classifier")
	t.Setenv("MODEL_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.ModelPath != "models/classifier_model.json" {
		t.Fatalf("model path = %q", cfg.Model.ModelPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MAIL_DRIVER", "smtp")
	t.Setenv("GIGACHAT_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9999" || cfg.Mail.Driver != "smtp" || cfg.GigaChat.Timeout != 3*time.Second {
		t.Fatalf("config = %+v", cfg)
	}
}
