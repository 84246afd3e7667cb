package enrichment

import (
	"context"

	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	"github.com/killallgit/minutes-api/internal/services/gemini"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
	"github.com/killallgit/minutes-api/pkg/transcript"
)

// slotText holds the user-facing messages of one requester
type slotText struct {
	missing    string
	failure    string
	parseIntro string
}

var texts = map[string]slotText{
	SlotSummary: {
		missing: "要約する文字起こし結果またはAPIキーがありません。",
		failure: "要約中にエラーが発生しました。",
	},
	SlotKeywords: {
		missing:    "キーワードを抽出する文字起こし結果またはAPIキーがありません。",
		failure:    "キーワード抽出中にエラーが発生しました。",
		parseIntro: "キーワードリストの解析に失敗しました。応答が期待されるJSON配列形式ではありませんでした。",
	},
	SlotActionItems: {
		missing:    "アクションアイテムを抽出する文字起こし結果またはAPIキーがありません。",
		failure:    "アクションアイテム抽出中にエラーが発生しました。",
		parseIntro: "API応答の解析に失敗しました。",
	},
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	generator gemini.Generator
	catalog   models.Catalog
	recorder  diagnostics.Recorder
	logger    *zap.Logger
}

// NewService creates a new enrichment service
func NewService(generator gemini.Generator, catalog models.Catalog, recorder diagnostics.Recorder, logger *zap.Logger) Service {
	if recorder == nil {
		recorder = diagnostics.NopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		generator: generator,
		catalog:   catalog,
		recorder:  recorder,
		logger:    logger,
	}
}

// Summarize returns a Markdown summary of the conversation
func (s *ServiceImpl) Summarize(ctx context.Context, req Request) (string, error) {
	raw, err := s.generate(ctx, req, SlotSummary, SummaryPrompt)
	if err != nil {
		return "", err
	}
	summary := UnwrapSummary(raw)
	s.record(ctx, req, SlotSummary, raw, nil, map[string]any{"length": len(summary)})
	return summary, nil
}

// ExtractKeywords returns the keywords and topics of the conversation
func (s *ServiceImpl) ExtractKeywords(ctx context.Context, req Request) ([]string, error) {
	raw, err := s.generate(ctx, req, SlotKeywords, KeywordsPrompt)
	if err != nil {
		return nil, err
	}
	keywords, perr := ParseKeywords(raw)
	if perr != nil {
		return nil, s.parseFailure(ctx, req, SlotKeywords, raw, perr)
	}
	s.record(ctx, req, SlotKeywords, raw, nil, map[string]any{"count": len(keywords)})
	return keywords, nil
}

// ExtractActionItems returns the tasks agreed in the conversation
func (s *ServiceImpl) ExtractActionItems(ctx context.Context, req Request) ([]models.ActionItem, error) {
	raw, err := s.generate(ctx, req, SlotActionItems, ActionItemsPrompt)
	if err != nil {
		return nil, err
	}
	items, perr := ParseActionItems(raw)
	if perr != nil {
		return nil, s.parseFailure(ctx, req, SlotActionItems, raw, perr)
	}
	s.record(ctx, req, SlotActionItems, raw, nil, map[string]any{"count": len(items)})
	return items, nil
}

// CheckPreconditions reports the VALIDATION error of a request that has no
// rows or no credential
func CheckPreconditions(slot string, rows int, apiKey string) error {
	if rows == 0 || apiKey == "" {
		return apperrors.ValidationError(slot, texts[slot].missing)
	}
	return nil
}

// generate checks the preconditions, builds the prompt and calls the model
func (s *ServiceImpl) generate(ctx context.Context, req Request, slot string, prompt func([]transcript.Utterance) string) (string, error) {
	t := texts[slot]
	if err := CheckPreconditions(slot, len(req.Rows), req.APIKey); err != nil {
		return "", err
	}

	s.logger.Info("enrichment started",
		zap.String("workspace_id", req.WorkspaceID),
		zap.String("slot", slot),
		zap.String("model", req.ModelID),
		zap.Int("rows", len(req.Rows)))

	raw, err := s.generator.Generate(ctx, req.APIKey, prompt(req.Rows), req.ModelID)
	if err != nil {
		classified := gemini.Classify(err, req.ModelID, s.catalog)
		appErr := apperrors.Wrap(err, classified.Code, t.failure+" 詳細: "+gemini.Detail(err))
		for k, v := range classified.Details {
			appErr.WithDetail(k, v)
		}
		s.logger.Error("enrichment failed",
			zap.String("workspace_id", req.WorkspaceID),
			zap.String("slot", slot),
			zap.String("code", string(appErr.Code)),
			zap.Error(err))
		s.record(ctx, req, slot, "", appErr, nil)
		return "", appErr
	}

	s.logger.Debug("raw enrichment response", zap.String("slot", slot), zap.String("raw", raw))
	return raw, nil
}

// parseFailure builds the PARSE error; the raw response goes to diagnostics only
func (s *ServiceImpl) parseFailure(ctx context.Context, req Request, slot, raw string, perr error) error {
	t := texts[slot]
	detail := t.parseIntro + "\n詳細: " + perr.Error()
	appErr := apperrors.ParseError(t.failure+" 詳細: "+detail, perr)

	s.logger.Warn("failed to parse enrichment response",
		zap.String("workspace_id", req.WorkspaceID),
		zap.String("slot", slot),
		zap.String("raw", raw),
		zap.Error(perr))
	s.record(ctx, req, slot, raw, appErr, nil)
	return appErr
}

func (s *ServiceImpl) record(ctx context.Context, req Request, slot, raw string, err error, meta map[string]any) {
	s.recorder.Record(ctx, diagnostics.Entry{
		WorkspaceID: req.WorkspaceID,
		Slot:        slot,
		ModelID:     req.ModelID,
		Err:         err,
		RawResponse: raw,
		Metadata:    meta,
	})
}
