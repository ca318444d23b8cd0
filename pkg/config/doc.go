// Package config handles configuration management for dottie.
// Settings are layered from built-in defaults, the user config file, the
// repository config file and DOTTIE_* environment variables, later layers
// overriding earlier ones.
package config
