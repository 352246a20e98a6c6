package calendar

// Outcome is the terminal result class of a callback invocation. It is the
// only thing the browser learns about what happened.
type Outcome string

const (
	// OutcomeSuccess means at least one event was created.
	OutcomeSuccess Outcome = "success"
	// OutcomeError covers missing code, missing server config, exchange
	// failure, and zero events created despite a plan being found.
	OutcomeError Outcome = "error"
	// OutcomeNoEvents means the token resolved to no pending plan: expired,
	// already consumed, or put on another instance. Remediation differs from
	// OutcomeError, so the two are never conflated.
	OutcomeNoEvents Outcome = "no_events"
	// OutcomeDenied means the user declined consent at the provider.
	OutcomeDenied Outcome = "denied"
)

// CallbackInput carries the provider's redirect query parameters.
type CallbackInput struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// CallbackResult is the aggregate outcome of the callback state machine.
type CallbackResult struct {
	Outcome Outcome
	Count   int    // created events, set for OutcomeSuccess
	Reason  string // provider denial reason, set for OutcomeDenied
}
