// Package paths resolves the on-disk locations grugui reads and writes.
//
// Locations follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/grugui (user configuration, grugui.toml)
//   - State: $XDG_STATE_HOME/grugui (log file)
//
// Both can be overridden with GRUGUI_CONFIG_DIR and GRUGUI_STATE_DIR.
// A leading ~ in an override is expanded to the home directory.
package paths
