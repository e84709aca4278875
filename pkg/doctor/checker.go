package doctor

// Checker runs environment checks.
type Checker struct {
	executor CommandExecutor
}

// NewChecker creates a new Checker with the real command executor.
func NewChecker() *Checker {
	return &Checker{executor: &RealExecutor{}}
}

// NewCheckerWithExecutor creates a new Checker with a custom executor (for testing).
func NewCheckerWithExecutor(exec CommandExecutor) *Checker {
	return &Checker{executor: exec}
}

// CheckAll runs every check and returns the results in a stable order.
func (c *Checker) CheckAll() []Check {
	return []Check{
		CheckOSRelease(c.executor),
		CheckDnf(c.executor),
		CheckCoprPlugin(c.executor),
		CheckSudo(c.executor),
	}
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func GetSummary(checks []Check) Summary {
	var summary Summary
	for _, check := range checks {
		summary.Total++
		switch check.Status {
		case StatusOK:
			summary.OK++
		case StatusMissing:
			summary.Missing++
		case StatusWarning:
			summary.Warnings++
		case StatusError:
			summary.Errors++
		}
	}
	return summary
}

// HasIssues returns true if any check is missing or errored.
func HasIssues(checks []Check) bool {
	s := GetSummary(checks)
	return s.Missing > 0 || s.Errors > 0
}
