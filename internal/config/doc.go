// Package config loads routerstat's configuration.
//
// Configuration is read from config.yaml in a single directory,
// $XDG_CONFIG_HOME/routerstat by default or the --config-path flag:
//
//	endpoint: https://router.example.com:8672/management
//	transport: http
//	timeout: 10s
//	limit: 500
//	output: table
//	tls:
//	  caCert: /etc/routerstat/ca.pem
//
// A missing file yields GetDefaultConfig. ROUTERSTAT_ENDPOINT,
// ROUTERSTAT_TRANSPORT, ROUTERSTAT_TIMEOUT, ROUTERSTAT_LIMIT,
// ROUTERSTAT_OUTPUT and the ROUTERSTAT_TLS_* variables override the file,
// and may themselves come from a .env file in the working directory.
package config
