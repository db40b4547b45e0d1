package probe

import "time"

// Recorder is the port interface for request accounting. The metrics adapter
// implements it; tests substitute their own.
type Recorder interface {
	RecordRequest()
	RecordError()
	ObserveDuration(d time.Duration)
}
