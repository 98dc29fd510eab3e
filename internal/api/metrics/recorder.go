package metrics

// Recorder feeds workflow outcomes into the package's Prometheus counters.
// It satisfies ports.WorkflowMetrics.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) UserCreated() {
	UsersCreatedTotal.Inc()
}

func (Recorder) UserUpdated() {
	UsersUpdatedTotal.Inc()
}

func (Recorder) UserDeleted() {
	UsersDeletedTotal.Inc()
}

func (Recorder) UserConflict(field string) {
	UserConflictsTotal.WithLabelValues(field).Inc()
}
