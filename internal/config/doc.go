// Package config loads niber configuration.
//
// The configuration lives in niber.json or niber.toml at the project root.
// Every field is optional.
//
// # Configuration File Structure
//
//	{
//	  "log": {"level": "debug", "format": "json"},
//	  "metrics": {"enabled": true, "namespace": "niber"},
//	  "tracing": {"tracerName": "niber"},
//	  "render": {"pretty": true, "indent": "  "},
//	  "inspect": {"host": "localhost", "port": 7070}
//	}
//
// The TOML form uses the same keys:
//
//	[log]
//	level = "debug"
//
//	[inspect]
//	port = 7070
package config
