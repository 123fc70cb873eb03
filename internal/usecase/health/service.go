// Package health aggregates component checks for the health endpoint.
package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
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
	Status Status
	Cards  int
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cards CardCounter
}

// New creates a Service.
func New(cards CardCounter) *Service {
	return &Service{cards: cards}
}

// Check reports the service health. An empty card collection means the
// initial load never happened or the file went bad, so the service is
// degraded rather than down: lookups still answer, they just miss.
func (s *Service) Check() Report {
	checks := make(map[string]CheckResult)
	count := s.cards.CardCount()

	if count > 0 {
		checks["cards"] = CheckOK
	} else {
		checks["cards"] = CheckError
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Cards: count, Checks: checks}
}
