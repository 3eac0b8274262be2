// Package launcher builds the command line used to spawn the JDT Language Server.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_pluginsDir        = "plugins"
	_launcherJarPrefix = "org.eclipse.equinox.launcher_"
	_javaHomeEnv       = "JAVA_HOME"
)

// JVM flags required by the server regardless of configuration.
var _baseJVMArgs = []string{
	"-Declipse.application=org.eclipse.jdt.ls.core.id1",
	"-Dosgi.bundles.defaultStartLevel=4",
	"-Declipse.product=org.eclipse.jdt.ls.core.product",
	"--add-modules=ALL-SYSTEM",
	"--add-opens", "java.base/java.util=ALL-UNNAMED",
	"--add-opens", "java.base/java.lang=ALL-UNNAMED",
}

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Launcher constructs the server spawn command for a workspace.
type Launcher interface {
	// BuildCommand returns the exec.Cmd that launches the server with the given
	// per-workspace data directory. The command is not started.
	BuildCommand(workspaceRoot, serverDir string) (*exec.Cmd, error)
	// ServerInstallDir returns the configured server installation directory.
	ServerInstallDir() string
}

// Params are inbound parameters to construct a Launcher.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	FS     fs.BridgeFS
}

type launcher struct {
	cfg    entity.ServerConfig
	logger *zap.SugaredLogger
	fs     fs.BridgeFS
}

// New creates a new Launcher.
func New(p Params) (Launcher, error) {
	cfg := entity.ServerConfig{}
	if err := p.Config.Get(entity.ServerConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.ServerConfigKey, err)
	}
	return &launcher{
		cfg:    cfg,
		logger: p.Logger,
		fs:     p.FS,
	}, nil
}

func (l *launcher) ServerInstallDir() string {
	return l.cfg.InstallDir
}

func (l *launcher) BuildCommand(workspaceRoot, serverDir string) (*exec.Cmd, error) {
	java, err := l.javaExecutable()
	if err != nil {
		return nil, err
	}

	jar, err := l.launcherJar()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(_baseJVMArgs)+len(l.cfg.JVMArgs)+6)
	args = append(args, _baseJVMArgs...)
	args = append(args, l.cfg.JVMArgs...)
	args = append(args,
		"-jar", jar,
		"-configuration", l.configDir(),
		"-data", serverDir,
	)

	cmd := exec.Command(java, args...)
	cmd.Dir = workspaceRoot
	return cmd, nil
}

// javaExecutable resolves the java binary from config, $JAVA_HOME, or PATH, in
// that order.
func (l *launcher) javaExecutable() (string, error) {
	homes := []string{l.cfg.JavaHome, os.Getenv(_javaHomeEnv)}
	for _, home := range homes {
		if home == "" {
			continue
		}
		candidate := filepath.Join(home, "bin", javaBinaryName())
		if ok, err := l.fs.FileExists(candidate); err == nil && ok {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(javaBinaryName()); err == nil {
		return path, nil
	}
	return "", &errors.TransportUnavailableError{Reason: "no java runtime found via config, $JAVA_HOME, or PATH"}
}

// launcherJar locates the Equinox launcher jar under the server install dir.
// When multiple versions are present the newest wins.
func (l *launcher) launcherJar() (string, error) {
	if l.cfg.InstallDir == "" {
		return "", &errors.TransportUnavailableError{Reason: "server install dir is not configured"}
	}

	pluginsDir := filepath.Join(l.cfg.InstallDir, _pluginsDir)
	entries, err := l.fs.ReadDir(pluginsDir)
	if err != nil {
		return "", &errors.TransportUnavailableError{Reason: fmt.Sprintf("reading server plugins dir %q: %v", pluginsDir, err)}
	}

	candidates := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, _launcherJarPrefix) && strings.HasSuffix(name, ".jar") {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", &errors.TransportUnavailableError{Reason: fmt.Sprintf("no equinox launcher jar under %q", pluginsDir)}
	}

	sort.Strings(candidates)
	return filepath.Join(pluginsDir, candidates[len(candidates)-1]), nil
}

func (l *launcher) configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(l.cfg.InstallDir, "config_win")
	case "darwin":
		return filepath.Join(l.cfg.InstallDir, "config_mac")
	default:
		return filepath.Join(l.cfg.InstallDir, "config_linux")
	}
}

func javaBinaryName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}
