// Package config loads grugui's configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. $XDG_CONFIG_HOME/grugui/grugui.toml
//  3. ./grugui.toml or ./.grugui.toml
//  4. an explicit file given with --config
//  5. GRUGUI_<SECTION>_<KEY> environment variables
//  6. command line flag overrides
//
// The merged tree is decoded into Config with mapstructure.
package config
