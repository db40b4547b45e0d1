package probe

import "errors"

// ErrSimulatedFailure is the synthetic error injected on a fixed fraction of
// ping calls to exercise alerting rules. It is not a real failure mode and is
// never retried.
var ErrSimulatedFailure = errors.New("simulated failure")
