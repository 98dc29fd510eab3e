package ports

// WorkflowMetrics records user workflow outcomes. The implementation lives at
// the adapter layer so the core stays free of instrumentation concerns.
type WorkflowMetrics interface {
	UserCreated()
	UserUpdated()
	UserDeleted()
	// UserConflict records a rejected write; field is "username" or "email".
	UserConflict(field string)
}
