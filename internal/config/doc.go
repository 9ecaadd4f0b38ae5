// Package config loads and validates slurmtail configuration.
//
// Settings come from a TOML file (~/.config/slurmtail/config.toml, or a
// slurmtail.toml next to the working directory), layered over built-in
// defaults. A .env file, when present, is loaded before environment
// lookups so SLURMTAIL_CONFIG can point at an alternate file.
package config
