// Package workspacedir resolves the workspace root for a session and manages the
// per-workspace server working directory, including the clean-on-next-start marker.
package workspacedir

import (
	"fmt"
	"path/filepath"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/fs"
	"github.com/zeebo/xxh3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_cacheSubdir    = "jdtls-bridge"
	_workspacesDir  = "workspaces"
	_cleanMarker    = ".cleanWorkspace"
	_serverLogsName = "logs"
)

// Build descriptor files that mark a Java workspace root.
var _rootMarkers = []string{
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"settings.gradle",
	".project",
}

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// WorkspaceDir resolves workspace roots and owns the server working directory
// derived from each root.
type WorkspaceDir interface {
	// FindRoot returns the nearest ancestor of startPath containing a recognized
	// build descriptor, or startPath itself when none is found.
	FindRoot(startPath string) string
	// ServerDir returns the per-workspace server working directory for a root,
	// creating it if needed.
	ServerDir(workspaceRoot string) (string, error)
	// LogsDir returns the server log directory under the workspace server dir.
	LogsDir(workspaceRoot string) (string, error)
	// RequestClean writes the marker that causes the next PrepareLaunch to wipe
	// the server working directory.
	RequestClean(workspaceRoot string) error
	// PrepareLaunch honors a pending clean marker, then returns the ready server
	// working directory.
	PrepareLaunch(workspaceRoot string) (string, error)
}

// Params are inbound parameters to construct a WorkspaceDir.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	FS     fs.BridgeFS
}

type workspaceDir struct {
	logger *zap.SugaredLogger
	fs     fs.BridgeFS
}

// New creates a new WorkspaceDir.
func New(p Params) WorkspaceDir {
	return &workspaceDir{
		logger: p.Logger,
		fs:     p.FS,
	}
}

func (w *workspaceDir) FindRoot(startPath string) string {
	dir := startPath
	for {
		for _, marker := range _rootMarkers {
			ok, err := w.fs.FileExists(filepath.Join(dir, marker))
			if err == nil && ok {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return startPath
}

func (w *workspaceDir) ServerDir(workspaceRoot string) (string, error) {
	cache, err := w.fs.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving user cache dir: %w", err)
	}

	hash := xxh3.HashString(workspaceRoot)
	dir := filepath.Join(cache, _cacheSubdir, _workspacesDir, fmt.Sprintf("%x", hash))
	if err := w.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("creating workspace server dir: %w", err)
	}
	return dir, nil
}

func (w *workspaceDir) LogsDir(workspaceRoot string) (string, error) {
	dir, err := w.ServerDir(workspaceRoot)
	if err != nil {
		return "", err
	}
	logs := filepath.Join(dir, _serverLogsName)
	if err := w.fs.MkdirAll(logs); err != nil {
		return "", fmt.Errorf("creating server logs dir: %w", err)
	}
	return logs, nil
}

func (w *workspaceDir) RequestClean(workspaceRoot string) error {
	dir, err := w.ServerDir(workspaceRoot)
	if err != nil {
		return err
	}
	return w.fs.WriteFile(filepath.Join(dir, _cleanMarker), "")
}

func (w *workspaceDir) PrepareLaunch(workspaceRoot string) (string, error) {
	dir, err := w.ServerDir(workspaceRoot)
	if err != nil {
		return "", err
	}

	marker := filepath.Join(dir, _cleanMarker)
	ok, err := w.fs.FileExists(marker)
	if err != nil {
		return "", fmt.Errorf("checking clean marker: %w", err)
	}
	if !ok {
		return dir, nil
	}

	w.logger.Infow("clean marker present, wiping workspace server dir", "dir", dir)
	if err := w.fs.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("cleaning workspace server dir: %w", err)
	}
	if err := w.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("recreating workspace server dir: %w", err)
	}
	return dir, nil
}
