package cli

import (
	"io"

	"github.com/arthur-debert/grugui/internal/version"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/spf13/cobra/doc"
)

// Shells lists the shells GenerateCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateCompletion writes the completion script of shell to w
func GenerateCompletion(w io.Writer, shell string) error {
	rootCmd := NewRootCmd()

	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s", shell).
			WithDetail("supported", Shells)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", shell)
	}
	return nil
}

// GenerateManPage writes the grugui(1) man page to w
func GenerateManPage(w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "GRUGUI",
		Section: "1",
		Source:  "grugui " + version.Version,
		Manual:  "grugui manual",
	}
	if err := doc.GenMan(NewRootCmd(), header, w); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to generate man page")
	}
	return nil
}
