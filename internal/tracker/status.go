package tracker

// Status is the workflow state of a task.
//
// Values are stable string codes used in storage, the CLI wire surface,
// and scenario files. Display text lives in a separate label table so
// renderers can change wording without touching stored codes.
type Status string

const (
	StatusToDo       Status = "todo"
	StatusInProgress Status = "progress"
	StatusDone       Status = "done"
)

// statusLabels maps status codes to their display labels.
var statusLabels = map[Status]string{
	StatusToDo:       "To Do",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
}

// Label returns the display label for the status.
// Unknown codes render as their raw string.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid returns true if the status is a known code.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Statuses returns all known status codes in workflow order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusDone}
}

// Priority is the urgency level of a task.
//
// Same code/label split as Status: codes are stable identifiers,
// labels are presentation only.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// priorityLabels maps priority codes to their display labels.
var priorityLabels = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

// Label returns the display label for the priority.
// Unknown codes render as their raw string.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}

// Valid returns true if the priority is a known code.
func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

// Priorities returns all known priority codes from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}
