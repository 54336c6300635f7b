package models

// AnalyticsSnapshot is the month-over-month view of one project's tasks for
// one member. It is computed per request and never stored.
//
// Each *Count is the current calendar month's value; each *Difference is that
// value minus the previous calendar month's value and may be negative.
type AnalyticsSnapshot struct {
	TaskCount      int64 `json:"taskCount"`
	TaskDifference int64 `json:"taskDifference"`

	AssignedTaskCount      int64 `json:"assignedTaskCount"`
	AssignedTaskDifference int64 `json:"assignedTaskDifference"`

	CompletedTaskCount      int64 `json:"completedTaskCount"`
	CompletedTaskDifference int64 `json:"completedTaskDifference"`

	IncompleteTaskCount      int64 `json:"incompleteTaskCount"`
	IncompleteTaskDifference int64 `json:"incompleteTaskDifference"`

	OverdueTaskCount      int64 `json:"overdueTaskCount"`
	OverdueTaskDifference int64 `json:"overdueTaskDifference"`
}
