package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"aster/models"
	"aster/services/schedule"
	"aster/services/todo"
)

// fakeContactRepo matches the directory contract: case-insensitive, exact
// match preferred over substring.
type fakeContactRepo struct {
	contacts []models.Contact
	err      error
}

func (f *fakeContactRepo) FindByName(ctx context.Context, name string) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	search := strings.ToLower(name)
	for _, c := range f.contacts {
		if strings.ToLower(c.Name) == search {
			copied := c
			return &copied, nil
		}
	}
	for _, c := range f.contacts {
		if strings.Contains(strings.ToLower(c.Name), search) {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeContactRepo) GetAll(ctx context.Context) ([]models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contacts, nil
}

// fakeCalendarRepo records appends so tests can count writes.
type fakeCalendarRepo struct {
	mu        sync.Mutex
	events    map[string][]models.Event
	readErr   error
	appendErr error
	appended  []models.Event
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{events: make(map[string][]models.Event)}
}

func (f *fakeCalendarRepo) addBusy(date string, startMin, endMin int) {
	day, _ := time.Parse("2006-01-02", date)
	f.events[date] = append(f.events[date], models.Event{
		Title: "busy",
		Start: day.Add(time.Duration(startMin) * time.Minute),
		End:   day.Add(time.Duration(endMin) * time.Minute),
	})
}

func (f *fakeCalendarRepo) GetEventsForDate(ctx context.Context, date string) ([]models.Event, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.events[date], nil
}

func (f *fakeCalendarRepo) AppendEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	event := models.Event{
		ID:        fmt.Sprintf("evt-%d", len(f.appended)+1),
		Title:     draft.Title,
		Start:     draft.Start,
		End:       draft.End,
		Attendees: draft.Attendees,
		CreatedAt: time.Now(),
	}
	f.appended = append(f.appended, event)
	return &event, nil
}

func (f *fakeCalendarRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.appended {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCalendarRepo) appendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appended)
}

// fakeTodoRepo backs the real todo service in dispatch tests.
type fakeTodoRepo struct {
	mu    sync.Mutex
	todos []models.Todo
}

func (f *fakeTodoRepo) GetAll(ctx context.Context) ([]models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Todo(nil), f.todos...), nil
}

func (f *fakeTodoRepo) Create(ctx context.Context, t models.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todos = append(f.todos, t)
	return nil
}

func (f *fakeTodoRepo) MarkCompleted(ctx context.Context, id string) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == id {
			now := time.Now()
			f.todos[i].Completed = true
			f.todos[i].CompletedAt = &now
			copied := f.todos[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTodoRepo) Delete(ctx context.Context, id string) (*models.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.todos {
		if f.todos[i].ID == id {
			deleted := f.todos[i]
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

// fakeReminderScheduler counts reminder enqueues.
type fakeReminderScheduler struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (f *fakeReminderScheduler) ScheduleEventReminder(ctx context.Context, event models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

// newTestService wires a DefaultAssistantService over fakes. The returned
// calendar fake doubles as the interval and event store.
func newTestService(contacts *fakeContactRepo, calendar *fakeCalendarRepo) (*DefaultAssistantService, *fakeReminderScheduler) {
	reminders := &fakeReminderScheduler{}
	svc := &DefaultAssistantService{
		Contacts:  contacts,
		Calendar:  calendar,
		Schedule:  &schedule.DefaultScheduleService{Repo: calendar},
		Todos:     &todo.DefaultTodoService{Repo: &fakeTodoRepo{}},
		Proposals: NewMemoryProposalStore(),
		Reminders: reminders,
	}
	return svc, reminders
}
