package types

import (
	"go.uber.org/zap"

	"github.com/killallgit/minutes-api/internal/database"
	"github.com/killallgit/minutes-api/internal/models"
	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	"github.com/killallgit/minutes-api/internal/services/workspace"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB          *database.DB
	Workspaces  workspace.Service
	Diagnostics diagnostics.Service
	Catalog     models.Catalog
	Logger      *zap.Logger
	Build       BuildInfo
}

// BuildInfo is reported by the version endpoint
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}
