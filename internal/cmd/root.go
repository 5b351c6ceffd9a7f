package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonoton/go-circbuf/internal/config"
	"github.com/jonoton/go-circbuf/internal/logger"
	"github.com/jonoton/go-circbuf/internal/tail"
)

// Version is set at build time.
var Version = "dev"

const stdinName = "-"

// New returns the ringtail root command.
func New() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "ringtail [flags] [file...]",
		Short: "Print the last lines of files or standard input",
		Long: `Keep the last N lines of each input in a fixed-size circular buffer and
print them once the input ends. With no file, or when file is -, read
standard input.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString(configFlag.name)
			if err != nil {
				return err
			}
			cfg, err := config.NewLoader(v, config.WithConfigFile(configFile)).Load()
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}
	initFlags(cmd)
	cmd.AddCommand(CmdVersion())
	return cmd
}

// CmdVersion returns the version subcommand.
func CmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the binary version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func run(cmd *cobra.Command, cfg *config.Config, files []string) error {
	logOpts := []logger.Option{logger.WithFormat(cfg.LogFormat)}
	if cfg.Debug {
		logOpts = append(logOpts, logger.WithDebug())
	}
	ctx := logger.WithLogger(cmd.Context(), logger.NewLogger(logOpts...))
	if len(files) == 0 {
		files = []string{stdinName}
	}

	order := tail.Forward
	switch {
	case cfg.Reverse:
		order = tail.Reverse
	case cfg.Sort:
		order = tail.Sorted
	}

	tl := tail.New(cfg.Lines)
	out := cmd.OutOrStdout()
	for i, name := range files {
		if err := readInput(ctx, cmd.InOrStdin(), tl, name); err != nil {
			return err
		}
		if i > 0 && cfg.Format == config.FormatText {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		err := tail.Render(out, tl.Lines(order), tail.RenderOptions{
			Format: cfg.Format,
			Number: cfg.Number,
			Header: len(files) > 1,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func readInput(ctx context.Context, stdin io.Reader, tl *tail.Tailer, name string) error {
	if name == stdinName {
		return tl.ReadFrom(ctx, "standard input", stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "failed to open input")
	}
	defer func() {
		_ = f.Close()
	}()
	return tl.ReadFrom(ctx, name, f)
}
