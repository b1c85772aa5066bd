package meeting

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	apperrors "github.com/smartmeethq/meeting-assistant-api/errors"
	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/dto"
	"github.com/smartmeethq/meeting-assistant-api/internal/infrastructure/stt"
	pkgai "github.com/smartmeethq/meeting-assistant-api/pkg/ai"
)

// Service orchestrates prompts to the language model and transcription of
// uploaded recordings
type Service interface {
	GeneratePlan(ctx context.Context, req dto.PlanRequest) (string, error)
	Summarize(ctx context.Context, transcript string) (dto.SummaryResult, error)
	ProcessRecording(ctx context.Context, path string) (dto.SummarizeResponse, error)
}

type meetingService struct {
	generator   pkgai.TextGenerator
	transcriber stt.Transcriber
	logger      *zap.Logger
}

// NewService constructs the orchestrator with injected model adapters so
// tests can substitute fakes
func NewService(generator pkgai.TextGenerator, transcriber stt.Transcriber, logger *zap.Logger) Service {
	return &meetingService{
		generator:   generator,
		transcriber: transcriber,
		logger:      logger,
	}
}

// GeneratePlan builds the planning prompt and returns the model's raw text
// reply unmodified. This endpoint's output is prose, not structured data.
func (s *meetingService) GeneratePlan(ctx context.Context, req dto.PlanRequest) (string, error) {
	plan, err := s.generate(ctx, buildPlanPrompt(req))
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("plan generated",
			zap.String("company", req.CompanyName),
			zap.Int("duration_minutes", req.Duration),
			zap.Int("plan_chars", len(plan)),
		)
	}
	return plan, nil
}

// ProcessRecording runs the full summarize pipeline over an audio file:
// transcribe, summarize, enrich. Any failure before a summary exists aborts
// the request; the source file is never deleted here.
func (s *meetingService) ProcessRecording(ctx context.Context, path string) (dto.SummarizeResponse, error) {
	transcript, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		return dto.SummarizeResponse{}, err
	}

	result, err := s.Summarize(ctx, transcript)
	if err != nil {
		return dto.SummarizeResponse{}, err
	}

	return dto.SummarizeResponse{
		SummaryResult: result,
		Transcript:    transcript,
	}, nil
}

// Summarize asks the model for the structured summary in a single call and
// extracts it defensively. When the model omitted the follow-up email or the
// chat recap, a sequential enrichment pass fills them in; enrichment
// failures leave those fields empty without discarding the summary.
func (s *meetingService) Summarize(ctx context.Context, transcript string) (dto.SummaryResult, error) {
	raw, err := s.generate(ctx, buildSummaryPrompt(transcript))
	if err != nil {
		return dto.SummaryResult{}, err
	}

	result := ExtractSummary(raw)
	s.enrich(ctx, &result)
	return result, nil
}

// enrich issues dedicated model calls for fields the structured reply left
// empty. These calls consume the extracted summary as input, so they can
// only run after extraction succeeded.
func (s *meetingService) enrich(ctx context.Context, result *dto.SummaryResult) {
	if result.FollowupEmail == "" {
		email, err := s.generate(ctx, buildEmailPrompt(result.Summary, result.Tasks))
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("follow-up email generation failed", zap.Error(err))
			}
		} else {
			result.FollowupEmail = email
		}
	}

	if result.Whatsapp == "" {
		recap, err := s.generate(ctx, buildWhatsappPrompt(result.Summary))
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("chat recap generation failed", zap.Error(err))
			}
		} else {
			result.Whatsapp = recap
		}
	}
}

// generate calls the model and maps failures into the application error
// taxonomy, keeping timeouts distinct from other upstream failures
func (s *meetingService) generate(ctx context.Context, prompt string) (string, error) {
	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.ErrUpstreamTimeout(err)
		}
		return "", apperrors.ErrUpstreamGeneration(err)
	}
	return reply, nil
}
