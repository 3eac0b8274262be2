// Package outputchannel writes human readable server output to a per-workspace
// log file that the editor can open or tail.
package outputchannel

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/fs"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/serverinfo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Channel is one named output log file.
type Channel interface {
	io.Writer
	// Path returns the log file location on disk.
	Path() string
	// Close flushes and closes the underlying file. The file is left on disk so
	// the user can inspect it after the session ends.
	Close() error
}

// Params define the dependencies for New.
type Params struct {
	FS             fs.BridgeFS
	ServerInfoFile serverinfo.ServerInfoFile
}

type channel struct {
	logger *zap.SugaredLogger
	file   io.Closer
	path   string
}

// New creates a channel writing to <dir>/<name>.log and records the path in the
// server info file so the editor can locate it.
func New(p Params, dir, name string) (Channel, error) {
	path := filepath.Join(dir, name+".log")
	logFile, err := p.FS.Create(path)
	if err != nil {
		return nil, err
	}

	if p.ServerInfoFile != nil {
		p.ServerInfoFile.UpdateField(outputKey(name), path)
	}

	// Write via a logger for formatting, timestamps, and buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)

	return &channel{
		logger: zap.New(core).Sugar(),
		file:   logFile,
		path:   path,
	}, nil
}

func (c *channel) Path() string {
	return c.path
}

// Write implements the io.Writer interface by sending data to the channel logger.
// Incoming data may contain multiple lines, including blank ones; each non-blank
// line is logged individually.
func (c *channel) Write(p []byte) (n int, err error) {
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		if len(line) > 0 {
			c.logger.Info(line)
		}
	}

	return len(p), nil
}

func (c *channel) Close() error {
	c.logger.Sync()
	return c.file.Close()
}

func outputKey(name string) string {
	return "output:" + name
}
