package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var addToolDef = mcp.NewTool("clip_add",
	mcp.WithDescription("Add text to the clipboard history. Identical content refreshes the existing entry's recency instead of creating a duplicate."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Text to store. Must not be empty or whitespace-only."),
	),
	mcp.WithString("source",
		mcp.Description("Origin of the content: clipboard, manual, import, or watch. Defaults to clipboard."),
	),
)

var getToolDef = mcp.NewTool("clip_get",
	mcp.WithDescription("Fetch the entry at a 1-based history position (1 = most recent)."),
	mcp.WithNumber("position",
		mcp.Required(),
		mcp.Description("1-based position in the most-recent-first ordering."),
	),
)

var listToolDef = mcp.NewTool("clip_list",
	mcp.WithDescription("List history entries, most recently touched first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum entries to return. Defaults to 10."),
	),
)

var searchToolDef = mcp.NewTool("clip_search",
	mcp.WithDescription("Search entry contents with a case-insensitive regular expression. Patterns that fail to compile fall back to substring matching."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Regular expression or literal text to match."),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum matches to return. Defaults to 20, capped at 1000."),
	),
)

var deleteToolDef = mcp.NewTool("clip_delete",
	mcp.WithDescription("Delete the entry at a 1-based history position. Works on pinned entries too."),
	mcp.WithNumber("position",
		mcp.Required(),
		mcp.Description("1-based position of the entry to remove."),
	),
)

var clearToolDef = mcp.NewTool("clip_clear",
	mcp.WithDescription("Delete history entries. Pinned entries survive unless all is true."),
	mcp.WithBoolean("all",
		mcp.Description("When true, pinned entries are removed as well."),
	),
)

var pinToolDef = mcp.NewTool("clip_pin",
	mcp.WithDescription("Pin the entry at a history position, exempting it from retention pruning and default clears."),
	mcp.WithNumber("position",
		mcp.Required(),
		mcp.Description("1-based position of the entry to pin."),
	),
)

var unpinToolDef = mcp.NewTool("clip_unpin",
	mcp.WithDescription("Remove pin protection from the entry at a history position."),
	mcp.WithNumber("position",
		mcp.Required(),
		mcp.Description("1-based position of the entry to unpin."),
	),
)

var statsToolDef = mcp.NewTool("clip_stats",
	mcp.WithDescription("Summarize the history: entry counts, character and word totals, timestamp range, and storage size."),
)

var exportToolDef = mcp.NewTool("clip_export",
	mcp.WithDescription("Export every entry, most recent first. The json format round-trips through clip_import; txt is a human-readable dump."),
	mcp.WithString("format",
		mcp.Description("Export encoding: json or txt. Defaults to json."),
	),
)

var importToolDef = mcp.NewTool("clip_import",
	mcp.WithDescription("Import entries from a json export. Duplicates refresh existing entries instead of creating new rows."),
	mcp.WithString("data",
		mcp.Required(),
		mcp.Description("JSON array of entry records, each carrying a content field."),
	),
)
