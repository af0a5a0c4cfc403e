package service

// Outcome labels recorded by Metrics.
const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
	OutcomeAnonymous   = "anonymous"
	OutcomeInvalid     = "invalid"
	OutcomeUnknownUser = "unknown_user"
)

// Metrics records business events for operators.
type Metrics interface {
	ObserveSignUp(outcome string)
	ObserveLogin(outcome string)
	ObserveSessionResolve(outcome string)
	ObservePostCreated()
}
