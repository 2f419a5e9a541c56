package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Imperative begin/end HTML and CSS builder"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgAppsShort    = "List the demo apps"
	MsgRenderShort  = "Render an app to a full HTML document"
	MsgExportShort  = "Export every app as a static site"
	MsgServeShort   = "Serve the apps over HTTP"
	MsgPlayShort    = "Play an app in the terminal with the live tree backend"
	MsgConfigShort  = "Print the effective configuration as TOML"

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No files were written"
	MsgAvailableApps  = "[Heading]Available apps:[/Heading]"
	MsgAppItem        = "  [Name]%s[/Name]  [Muted]%s[/Muted]\n"
	MsgExportedFormat = "[Success]Exported %d file(s) to %s[/Success]\n"
	MsgExportItem     = "  ✓ %s\n"
	MsgRenderedFormat = "[Success]Wrote %s[/Success]\n"
	MsgServing        = "Serving on [Name]http://%s[/Name] (ctrl-c to stop)\n"
	MsgErrorPrefix    = "[Error]Error:[/Error] "
	MsgSuggestionFmt  = "[Muted]Did you mean '%s'?[/Muted]"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/grugui/grugui.toml)"
	MsgFlagFormat   = "Output format: auto, term or text"
	MsgFlagDryRun   = "Preview changes without writing files"
	MsgFlagForce    = "Overwrite existing files"
	MsgFlagDir      = "Output directory"
	MsgFlagAddr     = "Address to listen on"
	MsgFlagLang     = "Document language"
	MsgFlagTitle    = "Document title"
	MsgFlagOutput   = "Write to a file instead of stdout"
	MsgFlagBody     = "Print only the app markup"
	MsgFlagCSS      = "Print only the app CSS"
	MsgFlagShowTree = "Print the live tree before each turn"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample = strings.TrimSpace(msgRenderExampleRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/play-long.txt
	msgPlayLongRaw string
	MsgPlayLong = strings.TrimSpace(msgPlayLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong = strings.TrimSpace(msgConfigLongRaw)
)
