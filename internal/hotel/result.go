package hotel

// Outcome classifies the result of a hotel operation.
type Outcome int

const (
	Success Outcome = iota
	AlreadyInState
	NotFound
	PolicyDenied
	InvalidInput
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case AlreadyInState:
		return "already_in_state"
	case NotFound:
		return "not_found"
	case PolicyDenied:
		return "policy_denied"
	case InvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Result is what every state-changing operation returns. Message is meant for humans,
// callers branch on Outcome.
type Result struct {
	Outcome Outcome
	Message string
}

func (r Result) OK() bool {
	return r.Outcome == Success
}

func (r Result) String() string {
	return r.Message
}

func result(o Outcome, msg string) Result {
	return Result{Outcome: o, Message: msg}
}
