package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type commandLineFlag struct {
	name, shorthand, usage string
	defaultValue           any
}

var (
	configFlag = commandLineFlag{
		name:      "config",
		shorthand: "c",
		usage:     "config file (yaml, toml or json)",
	}
	linesFlag = commandLineFlag{
		name:         "lines",
		shorthand:    "n",
		defaultValue: 10,
		usage:        "number of trailing lines to keep",
	}
	formatFlag = commandLineFlag{
		name:         "format",
		shorthand:    "o",
		defaultValue: "text",
		usage:        "output format: text, json or yaml",
	}
	reverseFlag = commandLineFlag{
		name:         "reverse",
		shorthand:    "r",
		defaultValue: false,
		usage:        "print newest lines first",
	}
	sortFlag = commandLineFlag{
		name:         "sort",
		shorthand:    "s",
		defaultValue: false,
		usage:        "sort the kept lines",
	}
	numberFlag = commandLineFlag{
		name:         "number",
		shorthand:    "N",
		defaultValue: false,
		usage:        "prefix lines with their line number",
	}
	debugFlag = commandLineFlag{
		name:         "debug",
		defaultValue: false,
		usage:        "enable debug logging",
	}
	logFormatFlag = commandLineFlag{
		name:         "log-format",
		defaultValue: "text",
		usage:        "log format: text or json",
	}
)

// boundFlags are the flags mapped onto config keys of the same name.
var boundFlags = []commandLineFlag{
	linesFlag, formatFlag, reverseFlag, sortFlag, numberFlag, debugFlag, logFormatFlag,
}

func initFlags(cmd *cobra.Command) {
	flags := append([]commandLineFlag{configFlag}, boundFlags...)
	for _, flag := range flags {
		switch v := flag.defaultValue.(type) {
		case int:
			cmd.Flags().IntP(flag.name, flag.shorthand, v, flag.usage)
		case bool:
			cmd.Flags().BoolP(flag.name, flag.shorthand, v, flag.usage)
		case string:
			cmd.Flags().StringP(flag.name, flag.shorthand, v, flag.usage)
		default:
			cmd.Flags().StringP(flag.name, flag.shorthand, "", flag.usage)
		}
	}
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for _, flag := range boundFlags {
		if err := v.BindPFlag(flag.name, cmd.Flags().Lookup(flag.name)); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", flag.name)
		}
	}
	return nil
}
