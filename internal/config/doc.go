// Package config provides configuration management for personalization.
//
// Configuration is layered. Later sources override earlier ones field by
// field:
//
//  1. Defaults compiled into the binary (GetDefaultConfig).
//  2. User configuration, ~/.config/personalization/config.yaml.
//  3. Project configuration, ./.personalization/config.yaml.
//  4. Environment variables prefixed with PERSONALIZATION_.
//
// When a configuration directory is given explicitly (--config-path), only
// config.yaml in that directory is read between the defaults and the
// environment.
//
// # Configuration Structure
//
//	logging:
//	  level: info
//	store:
//	  reducersEnabled: true
//	  waitTimeout: 5s
//	  actionLogSize: 1000
//	toast:
//	  dismissTimeout: 10s
//	mcp:
//	  enabled: true
//	  transport: streamable-http   # or sse, stdio
//	  host: localhost
//	  port: 8091
//	metrics:
//	  enabled: false
//	  address: localhost:9464
//	fixtures:
//	  userInfo:
//	    name: Jane Doe
//	    email: jane@example.com
//	  ambientAlbums: [...]
//	  collections: [...]
//	  images: {collectionId: [...]}
//	  defaultUserImages: [...]
//
// Fixtures replace the canned data of the in-memory providers used by the
// demo backends.
//
// # Environment Overrides
//
//	PERSONALIZATION_LOG_LEVEL
//	PERSONALIZATION_STORE_REDUCERS_ENABLED
//	PERSONALIZATION_STORE_WAIT_TIMEOUT
//	PERSONALIZATION_STORE_ACTION_LOG_SIZE
//	PERSONALIZATION_TOAST_DISMISS_TIMEOUT
//	PERSONALIZATION_MCP_ENABLED
//	PERSONALIZATION_MCP_TRANSPORT
//	PERSONALIZATION_MCP_HOST
//	PERSONALIZATION_MCP_PORT
//	PERSONALIZATION_METRICS_ENABLED
//	PERSONALIZATION_METRICS_ADDRESS
package config
