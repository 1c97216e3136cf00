package checks

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// DeterministicResult is the outcome of one structural check.
type DeterministicResult struct {
	TestName string `json:"test_name"`
	Status   string `json:"status"`
	Details  string `json:"details"`
}

func pass(name, details string) DeterministicResult {
	return DeterministicResult{TestName: name, Status: StatusPass, Details: details}
}

func fail(name, details string) DeterministicResult {
	return DeterministicResult{TestName: name, Status: StatusFail, Details: details}
}
