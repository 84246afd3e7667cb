package transcription

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	"github.com/killallgit/minutes-api/internal/services/gemini"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// SlotName identifies transcription runs in diagnostics
const SlotName = "transcription"

const (
	msgMissingInput = "APIキー、モデル、音声ファイルを選択してください。"
	msgNotAudio     = "音声ファイルを選択してください。"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	generator gemini.Generator
	parser    *transcript.Parser
	catalog   models.Catalog
	recorder  diagnostics.Recorder
	logger    *zap.Logger
}

// NewService creates a new transcription service
func NewService(generator gemini.Generator, parser *transcript.Parser, catalog models.Catalog, recorder diagnostics.Recorder, logger *zap.Logger) Service {
	if recorder == nil {
		recorder = diagnostics.NopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		generator: generator,
		parser:    parser,
		catalog:   catalog,
		recorder:  recorder,
		logger:    logger,
	}
}

// ValidateAudio rejects MIME types outside audio/*
func ValidateAudio(mimeType string) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "audio/") {
		return apperrors.ValidationError("file", msgNotAudio).WithDetail("mime_type", mimeType)
	}
	return nil
}

// Transcribe validates the request, calls the model and parses its answer
func (s *ServiceImpl) Transcribe(ctx context.Context, req Request) ([]transcript.Utterance, error) {
	if req.APIKey == "" || req.ModelID == "" || len(req.Audio) == 0 {
		return nil, apperrors.ValidationError("request", msgMissingInput)
	}
	if err := ValidateAudio(req.MimeType); err != nil {
		return nil, err
	}

	log := s.logger.With(
		zap.String("workspace_id", req.WorkspaceID),
		zap.String("model", req.ModelID),
		zap.String("mime_type", req.MimeType),
		zap.Int("audio_bytes", len(req.Audio)))
	log.Info("transcription started", zap.Int("speaker_count", req.SpeakerCount))

	raw, err := s.generator.Transcribe(ctx, req.APIKey, req.Audio, req.MimeType, BuildPrompt(req.SpeakerCount), req.ModelID)
	if err != nil {
		appErr := gemini.Classify(err, req.ModelID, s.catalog)
		log.Error("transcription failed", zap.String("code", string(appErr.Code)), zap.Error(err))
		s.recorder.Record(ctx, diagnostics.Entry{
			WorkspaceID: req.WorkspaceID,
			Slot:        SlotName,
			ModelID:     req.ModelID,
			Err:         appErr,
			Metadata:    map[string]any{"filename": req.Filename, "mime_type": req.MimeType},
		})
		return nil, appErr
	}

	log.Debug("raw transcription response", zap.String("raw", raw))
	rows := s.parser.Parse(raw)

	s.recorder.Record(ctx, diagnostics.Entry{
		WorkspaceID: req.WorkspaceID,
		Slot:        SlotName,
		ModelID:     req.ModelID,
		RawResponse: raw,
		Metadata: map[string]any{
			"filename":  req.Filename,
			"mime_type": req.MimeType,
			"rows":      len(rows),
		},
	})
	log.Info("transcription completed", zap.Int("rows", len(rows)))
	return rows, nil
}
