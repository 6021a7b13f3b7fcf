// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml, and SHOP_-prefixed environment
// variables. Nested keys map to variables by replacing dots with
// underscores, e.g. server.port is SHOP_SERVER_PORT.
package config
