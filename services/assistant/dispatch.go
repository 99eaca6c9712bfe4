// File: services/assistant/dispatch.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"aster/models"
)

// Dispatch routes a structured tool request to the matching service call.
// The kind set is closed; anything unrecognized takes the generic fallback
// branch and is answered, not rejected.
func (s *DefaultAssistantService) Dispatch(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	switch req.Kind {
	case models.ToolFreeSlots:
		return s.dispatchFreeSlots(ctx, req)
	case models.ToolContactLookup:
		return s.dispatchContactLookup(ctx, req)
	case models.ToolScheduleMeeting:
		return s.dispatchScheduleMeeting(ctx, req)
	case models.ToolCreateEvent:
		return s.dispatchCreateEvent(ctx, req)
	case models.ToolCreateTodo:
		return s.dispatchCreateTodo(ctx, req)
	case models.ToolListTodos:
		todos, err := s.Todos.List(ctx)
		if err != nil {
			return nil, err
		}
		return &models.ToolResponse{Kind: req.Kind, Output: todos}, nil
	case models.ToolCompleteTodo:
		return s.dispatchCompleteTodo(ctx, req)
	default:
		// Generic fallback: echo what was asked so the chat surface can
		// render it, instead of failing the whole exchange.
		return &models.ToolResponse{
			Kind:    req.Kind,
			Output:  req.Args,
			Message: fmt.Sprintf("tool %q is not recognized", req.Kind),
		}, nil
	}
}

func (s *DefaultAssistantService) dispatchFreeSlots(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args struct {
		Date      string `json:"date"`
		WorkStart *int   `json:"workStart,omitempty"`
		WorkEnd   *int   `json:"workEnd,omitempty"`
	}
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	var window *models.WorkWindow
	if args.WorkStart != nil || args.WorkEnd != nil {
		win := models.DefaultWorkWindow(args.Date)
		if args.WorkStart != nil {
			win.StartHour = *args.WorkStart
		}
		if args.WorkEnd != nil {
			win.EndHour = *args.WorkEnd
		}
		window = &win
	}

	overview, err := s.Schedule.DayOverview(ctx, args.Date, window)
	if err != nil {
		return nil, err
	}
	return &models.ToolResponse{Kind: req.Kind, Output: overview}, nil
}

func (s *DefaultAssistantService) dispatchContactLookup(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args struct {
		Name string `json:"name"`
	}
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	contact, err := s.Contacts.FindByName(ctx, args.Name)
	if err != nil {
		return nil, fmt.Errorf("contact lookup failed: %w", err)
	}
	if contact == nil {
		return &models.ToolResponse{
			Kind:    req.Kind,
			Message: fmt.Sprintf("No contact found matching %q", args.Name),
		}, nil
	}
	return &models.ToolResponse{Kind: req.Kind, Output: contact}, nil
}

func (s *DefaultAssistantService) dispatchScheduleMeeting(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args ProposalRequest
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	proposal, err := s.BuildMeetingProposal(ctx, args)
	if err != nil {
		return nil, err
	}
	return &models.ToolResponse{Kind: req.Kind, Output: proposal}, nil
}

func (s *DefaultAssistantService) dispatchCreateEvent(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args EventRequest
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	proposal, err := s.BuildEventProposal(ctx, args)
	if err != nil {
		return nil, err
	}
	return &models.ToolResponse{Kind: req.Kind, Output: proposal}, nil
}

func (s *DefaultAssistantService) dispatchCreateTodo(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args struct {
		Title    string `json:"title"`
		Priority string `json:"priority,omitempty"`
		DueDate  string `json:"dueDate,omitempty"`
	}
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	todo, err := s.Todos.Create(ctx, args.Title, args.Priority, args.DueDate)
	if err != nil {
		return nil, err
	}
	return &models.ToolResponse{Kind: req.Kind, Output: todo}, nil
}

func (s *DefaultAssistantService) dispatchCompleteTodo(ctx context.Context, req models.ToolRequest) (*models.ToolResponse, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req.Args, &args); err != nil {
		return nil, err
	}

	todo, err := s.Todos.Complete(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return &models.ToolResponse{Kind: req.Kind, Output: todo}, nil
}

func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing tool arguments")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}
	return nil
}
