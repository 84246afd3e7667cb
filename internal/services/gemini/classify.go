package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/killallgit/minutes-api/internal/models"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

// User-facing messages for classified API failures
const (
	msgQuotaModel     = "選択されたモデル (%s) の無料利用枠の上限に達したか、一時的に利用が制限されています。他のモデルを試すか、時間をおいて再度お試しください。"
	msgQuotaGeneral   = "APIの利用上限(クォータ)に達した可能性があります。プランを確認するか、時間をおいて再度お試しください。"
	msgInvalidKey     = "APIキーが無効、または選択したモデルへのアクセス権がありません。キーとモデルの組み合わせを確認してください。"
	msgForbidden      = "選択したモデルへのアクセスが拒否されました。APIキーに必要な権限が付与されているか確認してください。"
	msgModelNotFound  = "選択されたモデル (%s) が見つかりません。"
	msgContentBlocked = "コンテンツがセーフティポリシーによりブロックされました。"
	msgUnsupported    = "サポートされていない音声ファイル形式です。"
	msgUnknown        = "エラーが発生しました: %s"
)

// Classify converts a failed API call into an AppError of one of the
// generative-API kinds. An error that already is an AppError is returned as is.
func Classify(err error, modelID string, catalog models.Catalog) *apperrors.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	var status int
	message := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}

	var blocked *BlockedError
	isBlocked := errors.As(err, &blocked)

	switch {
	case status == http.StatusTooManyRequests ||
		strings.Contains(message, "quota") ||
		strings.Contains(message, "RESOURCE_EXHAUSTED"):
		if apiErr != nil && apiErr.QuotaViolationForModel(modelID) {
			return apperrors.Wrap(err, apperrors.ErrCodeQuotaExceeded,
				fmt.Sprintf(msgQuotaModel, catalog.DisplayName(modelID))).
				WithDetail("quota_scope", apperrors.QuotaScopeModel).
				WithDetail("model", modelID)
		}
		return apperrors.Wrap(err, apperrors.ErrCodeQuotaExceeded, msgQuotaGeneral).
			WithDetail("quota_scope", apperrors.QuotaScopeGeneral)

	case status == http.StatusBadRequest && strings.Contains(message, "API key not valid"):
		return apperrors.Wrap(err, apperrors.ErrCodeAuth, msgInvalidKey)

	case status == http.StatusForbidden:
		return apperrors.Wrap(err, apperrors.ErrCodeAuth, msgForbidden).
			WithDetail("reason", "permission")

	case status == http.StatusNotFound && strings.Contains(strings.ToLower(message), "not found"):
		return apperrors.Wrap(err, apperrors.ErrCodeModelNotFound, fmt.Sprintf(msgModelNotFound, modelID)).
			WithDetail("model", modelID)

	case isBlocked || strings.Contains(message, "SAFETY"):
		return apperrors.Wrap(err, apperrors.ErrCodeContentBlocked, msgContentBlocked)

	case strings.Contains(message, "Unsupported audio format"):
		return apperrors.Wrap(err, apperrors.ErrCodeUnsupportedFormat, msgUnsupported)
	}

	detail := message
	if apiErr != nil {
		detail = apiErr.Message
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUnknown, fmt.Sprintf(msgUnknown, detail))
}

// Detail returns the API's own message for err, used in enrichment error text
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
