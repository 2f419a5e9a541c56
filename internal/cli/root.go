// Package cli implements the grugui command line.
package cli

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/grugui/internal/version"
	"github.com/arthur-debert/grugui/pkg/cobrax/topics"
	"github.com/arthur-debert/grugui/pkg/config"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/grugui/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configKeyAnnotation ties a flag to the config key it overrides
const configKeyAnnotation = "grugui_config_key"

//go:embed help/*.md
var helpFiles embed.FS

// state is shared by the commands of one root
type state struct {
	verbosity  int
	configFile string
	format     string

	cfg   *config.Config
	sheet *style.Sheet
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:     "grugui",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&st.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&st.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAppsCmd(st))
	rootCmd.AddCommand(newRenderCmd(st))
	rootCmd.AddCommand(newExportCmd(st))
	rootCmd.AddCommand(newServeCmd(st))
	rootCmd.AddCommand(newPlayCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))

	// Topic-based help, rendered with glamour. Without topics cobra's help
	// still works.
	if err := initHelp(rootCmd, helpFiles); err != nil {
		logger := logging.GetLogger("cli")
		logger.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// initHelp installs the topic help command from the help/ directory of fsys
func initHelp(rootCmd *cobra.Command, fsys fs.FS) error {
	helpFS, err := fs.Sub(fsys, "help")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to open help topics")
	}

	renderer := topics.NewGlamourRenderer("auto")
	if f, ok := rootCmd.OutOrStdout().(*os.File); !ok || style.DetectFormat(f) == style.FormatText {
		renderer.Style = "notty"
	}
	_, err = topics.InitializeWithOptions(rootCmd, helpFS, topics.Options{Renderer: renderer})
	return err
}

// Execute runs the command line and prints a failure to stderr
func Execute(ctx context.Context, args []string) int {
	defer logging.Close()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), FormatError(style.Default(style.DetectFormat(os.Stderr)), err))
		return 1
	}
	return 0
}

// FormatError renders err, adding any suggestion the message lacks
func FormatError(sheet *style.Sheet, err error) string {
	msg := sheet.Render(MsgErrorPrefix) + err.Error()
	if guess, ok := suggestion(err); ok && !strings.Contains(err.Error(), "'"+guess+"'") {
		msg += "\n" + sheet.Render(fmt.Sprintf(MsgSuggestionFmt, guess))
	}
	return msg
}

// suggestion finds the first suggestion detail in the error chain
func suggestion(err error) (string, bool) {
	for err != nil {
		if ge, ok := err.(*errors.GruguiError); ok {
			if guess, ok := ge.Details["suggestion"].(string); ok && guess != "" {
				return guess, true
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return "", false
		}
		err = u.Unwrap()
	}
	return "", false
}

func (st *state) setup(cmd *cobra.Command) error {
	format, err := style.ParseFormat(st.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{File: st.configFile, Overrides: flagOverrides(cmd.Flags())})
	if err != nil {
		return err
	}
	st.cfg = cfg

	verbosity := st.verbosity
	if cfg.Log.Verbosity > verbosity {
		verbosity = cfg.Log.Verbosity
	}
	logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	st.sheet = style.Default(resolveFormat(format, cmd.OutOrStdout()))
	return nil
}

// resolveFormat resolves auto against the real output; anything that is
// not a file is plain
func resolveFormat(f style.Format, out io.Writer) style.Format {
	if f != style.FormatAuto {
		return f
	}
	if file, ok := out.(*os.File); ok {
		return style.DetectFormat(file)
	}
	return style.FormatText
}

// bindFlag marks a flag as overriding a config key
func bindFlag(cmd *cobra.Command, name, key string) {
	if err := cmd.Flags().SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(errors.Wrapf(err, errors.ErrInternal, "cannot bind flag --%s", name))
	}
}

// flagOverrides collects the values of changed, bound flags
func flagOverrides(flags *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		if keys, ok := f.Annotations[configKeyAnnotation]; ok && len(keys) == 1 {
			out[keys[0]] = f.Value.String()
		}
	})
	return out
}

// printf writes styled output
func (st *state) printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, st.sheet.Render(fmt.Sprintf(format, args...)))
}

func (st *state) println(w io.Writer, text string) {
	fmt.Fprintln(w, st.sheet.Render(strings.TrimRight(text, "\n")))
}
