// Package server exposes the portfolio demos as MCP (Model Context Protocol) tools.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - Input: JSON-RPC requests on stdin
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_edge_magnitude: Gradient-magnitude edge image as base64 PNG
//   - crop_recommend: Crop suggestion and advisory notes for a soil reading
//
// Images are cached by path for the lifetime of the process.
//
// # Error Handling
//
// Unparseable lines get -32700, unknown methods -32601, malformed tools/call
// params -32602, and failures inside a tool -32000 with the Go error string
// in the data field.
package server
