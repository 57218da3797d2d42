package service

import (
	"context"
	"fmt"

	"agridash/internal/models"
	"agridash/internal/soil"
	"agridash/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const advisorInstruction = `You are an agronomist advising smallholder farmers in India.
You receive a soil test and the result of a rule-based fertilizer check.
Explain the result in at most four short sentences of plain language.
Do not contradict the rule-based recommendation and do not invent measurements.
Mention application timing for the named crop when relevant.`

// AdvisorService asks GigaChat to explain rule engine output.
type AdvisorService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewAdvisorService(cfg *config.GigaChatConfig, logger *zap.Logger) (*AdvisorService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = advisorInstruction
	model.Temperature = 0.3

	logger.Info("Agronomy advisor enabled", zap.String("model", "GigaChat"))
	return &AdvisorService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *AdvisorService) Advise(ctx context.Context, crop string, test *models.SoilTest, rec *soil.Recommendation) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: advisorPrompt(crop, test, rec)},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

func advisorPrompt(crop string, test *models.SoilTest, rec *soil.Recommendation) string {
	return fmt.Sprintf(`Crop: %s
Soil test from %s:
- Nitrogen: %s
- Phosphorus: %s
- Potassium: %s
- pH: %.1f

Rule-based status: %s
Rule-based recommendation: %s`,
		titleCase(crop),
		test.TestDate.Format(soil.DateLayout),
		test.NitrogenLevel,
		test.PhosphorusLevel,
		test.PotassiumLevel,
		test.PHLevel,
		rec.Status,
		rec.Recommendation,
	)
}

func (s *AdvisorService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
