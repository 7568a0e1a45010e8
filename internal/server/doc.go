// Package server implements the MCP (Model Context Protocol) server for the
// photo adjustment session.
//
// This package provides a JSON-RPC 2.0 server that exposes the editing
// session through the MCP protocol. It's designed to work with Claude and
// other MCP-compatible clients, enabling AI systems to load photos, adjust
// them, and inspect the results.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
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
// The tools are organized into categories:
//
// Session Management:
//   - session_load_image: Load an image into the session
//   - session_list_images: List loaded images
//   - session_select_image: Switch the active image
//   - session_remove_image: Remove an image
//   - session_undo: Revert the last committed edit
//
// Adjustment Operations:
//   - adjust_get: Read current settings
//   - adjust_set: Set one scalar adjustment
//   - adjust_selective: Set a selective color band's offsets
//   - adjust_select_target: Choose the current band
//   - adjust_reset: Restore defaults
//
// Preview Lifecycle:
//   - preview_begin: Snapshot settings, enter preview mode
//   - preview_end: Commit the preview as one undo step
//
// Rendering and Output:
//   - image_render: Render at preview or final quality
//   - image_export: Encode a final render as PNG or JPEG
//   - image_thumbnail: Get the list thumbnail
//   - image_sample_color: Sample a displayed pixel
//
// Enhancement:
//   - image_suggest: Ask the suggestion provider for settings
//
// # Session State
//
// The server owns one session.Controller for its process lifetime. Each
// loaded image carries its own settings and undo history; tools that omit
// an image id operate on the active image.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
