package core

import (
	"sync"
	"time"
)

// recordingCollector is a MetricsCollector test double that records every
// call for verification.
type recordingCollector struct {
	mu    sync.Mutex
	calls []recordedRequest
}

type recordedRequest struct {
	method   string
	endpoint string
	status   string
	duration time.Duration
}

func (c *recordingCollector) RecordRequest(method, endpoint, status string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, recordedRequest{method, endpoint, status, duration})
}
