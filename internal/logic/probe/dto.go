package probe

import "time"

// Result is the payload of a successful ping. PodName is empty when pod
// identity was not provided by the environment.
type Result struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	PodName   string    `json:"podName"`
}
