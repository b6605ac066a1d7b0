package notify

import (
	"context"
	"strings"
	"time"

	"callscreen_backend/internal/bank"
	"callscreen_backend/platform/apperr"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"
)

// CommandResult reports how an inbound bot command was handled.
type CommandResult struct {
	Status  string `json:"status"`
	Command string `json:"command,omitempty"`
}

// Commander executes the bot commands supported by the chat.
type Commander struct {
	sender *Sender
	dir    DirectoryReader
	cfg    config.LineConfig
	log    *logger.Logger
}

// NewCommander creates the bot command executor.
func NewCommander(sender *Sender, dir DirectoryReader, cfg config.LineConfig, log *logger.Logger) *Commander {
	return &Commander{sender: sender, dir: dir, cfg: cfg, log: log}
}

// Execute dispatches one chat message to its command. Unrecognized text is
// acknowledged without action so the chat can hold normal conversation.
func (cmd *Commander) Execute(ctx context.Context, text string) (CommandResult, error) {
	if !cmd.sender.Configured() {
		return CommandResult{}, apperr.Unavailable("canal Telegram non configuré")
	}

	switch {
	case strings.HasPrefix(text, "/numero "):
		rawPhone := strings.TrimSpace(strings.TrimPrefix(text, "/numero "))
		record := cmd.dir.Lookup(rawPhone)
		message := FormatClientMessage(record, ContextSearch, cmd.cfg.GetLineNumber(), time.Now())
		if err := cmd.sender.SendMessage(ctx, message); err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Status: "ok", Command: "numero"}, nil

	case strings.HasPrefix(text, "/iban "):
		iban := strings.TrimSpace(strings.TrimPrefix(text, "/iban "))
		if err := cmd.sender.SendMessage(ctx, FormatIBANMessage(iban, bank.Classify(iban))); err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Status: "ok", Command: "iban"}, nil

	case strings.HasPrefix(text, "/stats"):
		message := FormatStatsMessage(cmd.dir.Stats(), cmd.cfg.GetLineNumber(), bank.TableSize(), bank.CreditAgricoleCount())
		if err := cmd.sender.SendMessage(ctx, message); err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Status: "ok", Command: "stats"}, nil
	}

	return CommandResult{Status: "unknown"}, nil
}
