package health

import (
	"context"

	"github.com/kailas-cloud/memoria/internal/version"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the document store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status  Status
	Version string
	Checks  map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db DBPinger
}

// New creates a Service.
func New(db DBPinger) *Service {
	return &Service{db: db}
}

// Check pings the document store. Without it nothing can be served, so a
// failed ping makes the whole service unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: Healthy, Version: version.Version, Checks: map[string]CheckResult{"database": CheckOK}}
	if err := s.db.Ping(ctx); err != nil {
		r.Status = Unhealthy
		r.Checks["database"] = CheckError
	}
	return r
}
