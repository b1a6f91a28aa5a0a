package gateway

// Outcome tags a Result. Degraded is distinct from Failed: the upstream answered
// but its content was unusable, so callers get an empty value instead of an error.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDegraded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the single return shape of every gateway operation.
//
// Data is meaningful for OutcomeOK and OutcomeDegraded (where it holds the empty
// default). Err is set only for OutcomeFailed. Reason explains a degradation.
type Result[T any] struct {
	Outcome Outcome
	Data    T
	Err     error
	Reason  error
}

func ok[T any](data T) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Data: data}
}

func degraded[T any](empty T, reason error) Result[T] {
	return Result[T]{Outcome: OutcomeDegraded, Data: empty, Reason: reason}
}

func failed[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeFailed, Err: err}
}

// Failed reports whether the operation hit a hard failure.
func (r Result[T]) Failed() bool {
	return r.Outcome == OutcomeFailed
}

// Unwrap returns the conventional (value, error) pair. Degraded results return
// their empty data and a nil error.
func (r Result[T]) Unwrap() (T, error) {
	if r.Outcome == OutcomeFailed {
		var zero T
		return zero, r.Err
	}
	return r.Data, nil
}
