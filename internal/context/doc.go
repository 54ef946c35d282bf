// Package context stores named router management endpoints.
//
// Contexts live in contexts.yaml next to config.yaml, by default in
// $XDG_CONFIG_HOME/routerstat:
//
//	current-context: edge
//	contexts:
//	  - name: local
//	    endpoint: http://localhost:8672/management
//	  - name: edge
//	    endpoint: https://edge.example.com/mcp
//	    transport: streamable-http
//	    settings:
//	      output: markdown
//	      limit: 200
//
// routerstat resolves the endpoint to query in this order:
//  1. --endpoint flag
//  2. --context flag
//  3. ROUTERSTAT_CONTEXT environment variable
//  4. current-context from contexts.yaml
//  5. endpoint from config.yaml
//
// Storage guards the file with a mutex inside one process only.
package context
