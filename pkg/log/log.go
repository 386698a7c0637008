// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package log

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

const (
	slogFields      ctxKey = "slog_fields"
	logLevelDefault        = slog.LevelDebug

	debug = "debug"
	warn  = "warn"
	info  = "info"

	formatText = "text"

	defaultLogFileName = "roster-svc.log"
	defaultMaxSizeMB   = 50
	defaultMaxBackups  = 5
	defaultMaxAgeDays  = 14
)

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context wrapper when attributes are bound to the logger.
func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context wrapper when a group is opened on the logger.
func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so sibling contexts never share a backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)
		attrs = append(attrs, attr)
		return context.WithValue(parent, slogFields, attrs)
	}

	v := []slog.Attr{}
	v = append(v, attr)
	return context.WithValue(parent, slogFields, v)
}

// Options describes the handler built by NewHandler.
type Options struct {
	// Level is the minimum level written
	Level slog.Level
	// AddSource adds the caller file and line
	AddSource bool
	// Format is "json" (default) or "text"; text is colorized with tint
	Format string
	// NoColor disables tint colors, used when writing to files
	NoColor bool
}

// NewHandler builds the context-aware handler writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	var h slog.Handler
	if strings.EqualFold(opts.Format, formatText) {
		h = tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			AddSource:  opts.AddSource,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		})
	}
	return contextHandler{h}
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case debug:
		return slog.LevelDebug
	case warn, "warning":
		return slog.LevelWarn
	case info:
		return slog.LevelInfo
	default:
		return logLevelDefault
	}
}

// InitStructureLogConfig sets the structured log behavior
func InitStructureLogConfig() {

	logOptions := Options{}
	var w io.Writer = os.Stdout

	configurations := map[string]func(){
		"options-logLevel": func() {
			logLevel := os.Getenv("LOG_LEVEL")
			slog.Info("log config",
				"logLevel", logLevel,
			)
			logOptions.Level = ParseLevel(logLevel)
		},
		"options-addSource": func() {

			addSourceBool := false

			addSource := os.Getenv("LOG_ADD_SOURCE")
			if addSource == "true" || addSource == "false" {
				addSourceBool = addSource == "true"
			}
			slog.Info("log config",
				"LOG_ADD_SOURCE", addSourceBool,
			)
			logOptions.AddSource = addSourceBool
		},
		"options-format": func() {
			logOptions.Format = os.Getenv("LOG_FORMAT")
			slog.Info("log config",
				"LOG_FORMAT", logOptions.Format,
			)
		},
		"options-file": func() {
			logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))
			if logDir == "" {
				return
			}
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				slog.Error("unable to create log directory, logging to stdout only",
					"LOG_DIR", logDir,
					"error", err,
				)
				return
			}
			logFile := &lumberjack.Logger{
				Filename:   filepath.Join(logDir, defaultLogFileName),
				MaxSize:    envInt("LOG_MAX_SIZE_MB", defaultMaxSizeMB),
				MaxBackups: envInt("LOG_MAX_BACKUPS", defaultMaxBackups),
				MaxAge:     envInt("LOG_MAX_AGE_DAYS", defaultMaxAgeDays),
				Compress:   os.Getenv("LOG_COMPRESS") == "true",
			}
			slog.Info("log config",
				"LOG_DIR", logDir,
				"file", logFile.Filename,
			)
			w = io.MultiWriter(os.Stdout, logFile)
			logOptions.NoColor = true
		},
	}

	for name, f := range configurations {
		slog.Info("setting logging configuration",
			"name", name,
		)
		f()
	}
	log.SetFlags(log.Llongfile)
	slog.SetDefault(slog.New(NewHandler(w, logOptions)))
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid log config value, using default",
			"name", name,
			"value", raw,
			"default", fallback,
		)
		return fallback
	}
	return v
}
