package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while"

	"github.com/msto63/whilec/internal/render"
	"github.com/msto63/whilec/pkg/core/config"
	"github.com/msto63/whilec/pkg/core/logging"
)

// app bundles what every command needs
type app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *while.Engine
	out    *render.Renderer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	logger := logging.FromConfig(cfg, cmd.ErrOrStderr(), verbose)
	engine := while.New(while.Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		MaxDepth:       cfg.Parser.MaxDepth,
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		out:    render.New(cmd.OutOrStdout(), cfg.Render.ColorEnabled()),
	}, nil
}

// requestContext tags the command context with a fresh correlation ID
func requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return while.WithCorrelationID(ctx, uuid.New().String())
}

// readInput returns the program named by args: stdin for no argument or
// "-", the file contents if the argument is an existing file, otherwise
// the arguments themselves as program text.
func readInput(cmd *cobra.Command, args []string) (name, input string, err error) {
	if len(args) == 0 {
		return readSource(cmd, "-")
	}
	if len(args) == 1 {
		return readSource(cmd, args[0])
	}
	return "<args>", strings.Join(args, " "), nil
}

func readSource(cmd *cobra.Command, arg string) (name, input string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return "<stdin>", trimNewline(string(data)), nil
	}

	if info, statErr := os.Stat(arg); statErr == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", "", err
		}
		return arg, trimNewline(string(data)), nil
	}

	return "<args>", arg, nil
}

// trimNewline strips the single line terminator editors append to files
func trimNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
