// Package config handles configuration loading and defaults.
//
// Values are resolved in priority order, each level overriding the last:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/todo/config.toml or the OS equivalent)
// 3. Project config file (.todo.toml in the working directory)
// 4. Environment variables (TODO_*, plus NO_COLOR)
// 5. Root CLI flags
package config
