// Package configs manages zlang's filesystem locations and user configuration.
//
// # Locations
//
// ZlangSettings is resolved once at startup:
//
//   - DataDir: $XDG_DATA_HOME/zlang (or ~/.local/share/zlang), overridable with
//     ZLANG_DATA_DIR or store.data_dir in config.toml
//   - ConfigDir: os.UserConfigDir()/zlang
//
// DataDir holds the three independent backing stores (master.key,
// recovery.json and profiles/<name>/memory.bin) plus audit.log.
//
// # User Configuration
//
// config.toml is TOML:
//
//	[user]
//	name = "Ada"
//	language = "en"
//
//	[network]
//	allow = true
//	probe_url = "https://api.github.com/zen"
//	sync_url = "https://httpbin.org/get"
//	timeout = "5s"
//
//	[store]
//	active_profile = "default"
//
// Fields missing from the file keep their defaults.
package configs
