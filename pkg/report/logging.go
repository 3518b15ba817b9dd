package report

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/racekit/stocopy/pkg/copier"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the copy run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogOutcome logs one file outcome with appropriate emoji and formatting
func (u *UserLogger) LogOutcome(o copier.Outcome) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch o.Status {
	case copier.StatusCopied:
		prefix = "✨"
		action = fmt.Sprintf("Copied to %s", o.Folder)
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case copier.StatusNoCarCode:
		prefix = "⏭️"
		action = "Skipped (no car code in filename)"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case copier.StatusNoMatchingFolder:
		prefix = "⏭️"
		action = fmt.Sprintf("Skipped (no folder named %q)", o.CarCode)
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case copier.StatusCopyFailed:
		prefix = "❌"
		action = "Copy failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❓"
		action = "Unknown"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s: %s", o.File, action)
	if o.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(o.Err)
		u.log.Error().Err(o.Err).Str("status", o.Status.String()).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().Str("status", o.Status.String()).Msg(msg)
	}
}

// 📊 LogSummary logs the end-of-run aggregate counts
func (u *UserLogger) LogSummary(s Summary) {
	line := fmt.Sprintf("%s copied, %s skipped, %s failed (%d files)",
		color.GreenString("%d", s.Copied),
		color.YellowString("%d", s.Skipped()),
		color.RedString("%d", s.CopyFailed),
		s.Total(),
	)
	if s.CopyFailed > 0 {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "📊"}).Println(line)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "📊"}).Println(line)
	}
	u.log.Info().
		Int("copied", s.Copied).
		Int("skipped", s.Skipped()).
		Int("failed", s.CopyFailed).
		Msg("copy run complete")
}

// ❌ LogFailure logs a run-aborting failure
func (u *UserLogger) LogFailure(description string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
	}
	u.log.Error().Err(err).Msg(description)
}
