package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/grugui/internal/version"
	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/config"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/export"
	"github.com/arthur-debert/grugui/pkg/page"
	"github.com/arthur-debert/grugui/pkg/player"
	"github.com/arthur-debert/grugui/pkg/server"
	"github.com/arthur-debert/grugui/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grugui version %s\n", version.Version)
			fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}

func newAppsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: MsgAppsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cat := apps.Default()
			desc := cat.Describe()

			st.println(out, MsgAvailableApps)
			for _, name := range cat.Names() {
				st.printf(out, MsgAppItem, name, desc[name])
			}
			return nil
		},
	}
}

func newRenderCmd(st *state) *cobra.Command {
	var (
		output   string
		bodyOnly bool
		cssOnly  bool
	)

	cmd := &cobra.Command{
		Use:     "render [app]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bodyOnly && cssOnly {
				return errors.New(errors.ErrInvalidInput, "--body and --css cannot be combined")
			}

			name := st.cfg.Render.App
			if len(args) == 1 {
				name = args[0]
			}
			app, err := apps.Default().Lookup(name)
			if err != nil {
				return err
			}
			eng, err := core.New()
			if err != nil {
				return err
			}

			doc, err := page.Render(eng, app, pageOptions(st.cfg))
			if err != nil {
				return err
			}

			content := doc.HTML
			switch {
			case bodyOnly:
				content = doc.Body
			case cssOnly:
				content = doc.CSS
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}

			files := []export.File{{Path: filepath.Base(output), Content: []byte(content + "\n")}}
			res, err := export.Site(cmd.Context(), filepath.Dir(output), files, export.Options{Force: true})
			if err != nil {
				return err
			}
			st.printf(cmd.OutOrStdout(), MsgRenderedFormat, filepath.Join(res.Dir, files[0].Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&bodyOnly, "body", false, MsgFlagBody)
	cmd.Flags().BoolVar(&cssOnly, "css", false, MsgFlagCSS)
	cmd.Flags().String("lang", "", MsgFlagLang)
	cmd.Flags().String("title", "", MsgFlagTitle)
	bindFlag(cmd, "lang", "render.lang")
	bindFlag(cmd, "title", "render.title")
	return cmd
}

func newExportCmd(st *state) *cobra.Command {
	var opts export.Options

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Long:  MsgExportLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := core.New()
			if err != nil {
				return err
			}
			files, err := export.Build(eng, apps.Default(), pageOptions(st.cfg))
			if err != nil {
				return err
			}

			res, err := export.Site(cmd.Context(), st.cfg.Export.Dir, files, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			written := append([]string(nil), res.Written...)
			sort.Strings(written)
			for _, path := range written {
				st.printf(out, MsgExportItem, path)
			}
			if res.DryRun {
				st.println(out, MsgDryRunNotice)
				return nil
			}
			st.printf(out, MsgExportedFormat, len(res.Written), res.Dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, MsgFlagForce)
	cmd.Flags().String("dir", "", MsgFlagDir)
	bindFlag(cmd, "dir", "export.dir")
	return cmd
}

func newServeCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: MsgServeShort,
		Long:  MsgServeLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := core.New()
			if err != nil {
				return err
			}
			srv := server.New(st.cfg, eng, apps.Default())
			st.printf(cmd.OutOrStdout(), MsgServing, st.cfg.Server.Addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", MsgFlagAddr)
	bindFlag(cmd, "addr", "server.addr")
	return cmd
}

func newPlayCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [app]",
		Short: MsgPlayShort,
		Long:  MsgPlayLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := st.cfg.Render.App
			if len(args) == 1 {
				name = args[0]
			}
			app, err := apps.Default().Lookup(name)
			if err != nil {
				return err
			}
			eng, err := core.New()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := player.New(eng, app, player.Options{
				Out:      out,
				Prompter: prompterFor(cmd),
				Sheet:    st.sheet,
				ShowTree: st.cfg.Play.ShowTree,
			})
			log.Info().Str("app", name).Msg("Playing app")
			return p.Run(cmd.Context())
		},
	}

	cmd.Flags().Bool("show-tree", true, MsgFlagShowTree)
	bindFlag(cmd, "show-tree", "play.show_tree")
	return cmd
}

// prompterFor picks the interactive prompter when both ends are a terminal
func prompterFor(cmd *cobra.Command) player.Prompter {
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if inOK && outOK && style.IsInteractive(in) && style.IsInteractive(out) {
		return player.PtermPrompter{}
	}
	return player.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func newConfigCmd(st *state) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return nil
			}
			out, err := config.Dump(st.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the embedded defaults")
	return cmd
}

// pageOptions maps the render config onto page options
func pageOptions(cfg *config.Config) page.Options {
	return page.Options{Lang: cfg.Render.Lang, Title: cfg.Render.Title}
}
