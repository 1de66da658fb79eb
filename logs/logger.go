package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/nanolang/nano/cmds"
	"github.com/nanolang/nano/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for _, def := range []struct {
		flag  string
		level slog.Level
	}{
		{"-log-debug", slog.LevelDebug},
		{"-log-info", slog.LevelInfo},
		{"-log-warn", slog.LevelWarn},
		{"-log-error", slog.LevelError},
	} {
		cmds.Define(def.flag, cmds.Func(func() {
			level.Set(def.level)
		}).Desc("set log level to "+strings.TrimPrefix(def.flag, "-log-")))
	}
}

type Logger = *slog.Logger

// Writer is the destination of the terminal log handler. Stderr keeps
// log records out of the token and tree dumps on stdout; tests fork the
// scope with a buffer instead.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Logger fans records out to a terminal text handler and, when
// available, the systemd journal. Under a systemd service the terminal
// handler is skipped so journal entries are not doubled. Development
// mode adds source positions to terminal records.
func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	var handlers []slog.Handler

	var terminal slog.Handler
	if !underSystemdService() {
		terminal = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level:     level,
				AddSource: mode == modes.ModeDevelopment,
			},
		)
		handlers = append(handlers, terminal)
	}

	journal, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return journalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = journalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminal != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journal)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journal field names allow only upper-case letters and digits
func journalKey(str string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, str)
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.SplitN(string(content), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
