package assistant

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNotConfigured is returned when no completion API key is configured.
	ErrNotConfigured = errors.New("openai api key is not configured")

	// ErrProcessing is returned for any completion or formatting failure. The cause is logged,
	// never returned.
	ErrProcessing = errors.New("failed to process ai request")
)

// Request is the body accepted by the public AI endpoint.
type Request struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

// Response is the success body of the public AI endpoint.
type Response struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

// Service selects an instruction for a prompt, asks the model and formats its answer.
type Service struct {
	completer Completer
	formatter *Formatter
	input     *InputConverter
	log       zerolog.Logger
}

// NewService creates a service. A nil completer means no API key is configured: every call
// fails with ErrNotConfigured.
func NewService(completer Completer, log zerolog.Logger) *Service {
	return &Service{
		completer: completer,
		formatter: NewFormatter(),
		input:     NewInputConverter(),
		log:       log,
	}
}

// Process handles one request. It keeps no state between calls.
func (s *Service) Process(ctx context.Context, req Request) (Response, error) {
	if s.completer == nil {
		s.log.Error().Msg("API key not found in either config or env")
		return Response{}, ErrNotConfigured
	}

	kind, system := SystemPrompt(req.Prompt)
	log := s.log.With().Str("kind", string(kind)).Logger()

	content, err := s.input.ToMarkdown(req.Content)
	if err != nil {
		log.Error().Err(err).Msg("content conversion failed")
		return Response{}, ErrProcessing
	}

	answer, err := s.completer.Complete(ctx, system, UserMessage(content, req.Prompt))
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return Response{}, ErrProcessing
	}

	html, err := s.formatter.Format(answer)
	if err != nil {
		log.Error().Err(err).Msg("formatting failed")
		return Response{}, ErrProcessing
	}

	log.Debug().Int("chars", len(html)).Msg("ai request processed")
	return Response{Success: true, Content: html}, nil
}
