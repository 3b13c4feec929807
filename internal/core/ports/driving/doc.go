// Package driving defines the driving (inbound) port interfaces.
//
// Driving ports are implemented by core services and consumed by the
// front-end adapters: the MCP tool-call server, the editor slash-command
// handler, the CLI, and the TUI. Each adapter translates its own request
// shape into these calls and formats the structured results for its
// protocol.
package driving
