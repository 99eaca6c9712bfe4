package handlers

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Assistant *AssistantHandler
	Calendar  *CalendarHandler
	Contacts  *ContactHandler
	Todos     *TodoHandler
}
