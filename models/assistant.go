package models

import "encoding/json"

// ToolKind enumerates the assistant tools. Dispatch is a closed switch over
// these kinds with a generic fallback for anything unrecognized.
type ToolKind string

const (
	ToolFreeSlots       ToolKind = "free_slots"
	ToolContactLookup   ToolKind = "contact_lookup"
	ToolScheduleMeeting ToolKind = "schedule_meeting"
	ToolCreateEvent     ToolKind = "event_create"
	ToolCreateTodo      ToolKind = "todo_create"
	ToolListTodos       ToolKind = "todo_list"
	ToolCompleteTodo    ToolKind = "todo_complete"
)

// ToolRequest is a structured tool invocation. Args is decoded per kind.
type ToolRequest struct {
	Kind ToolKind        `json:"kind" binding:"required"`
	Args json.RawMessage `json:"args,omitempty"`
}

// ToolResponse wraps a tool result for the chat surface.
type ToolResponse struct {
	Kind    ToolKind `json:"kind"`
	Output  any      `json:"output,omitempty"`
	Message string   `json:"message,omitempty"`
}
