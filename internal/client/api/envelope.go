package api

// Result is the uniform envelope returned by every gateway operation.
// Success=false implies Data is the zero value and Message explains why;
// Success=true implies Data holds the parsed payload.
//
// Callers branch on Success; no gateway operation returns a Go error or
// panics past its boundary.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
}

const (
	msgSuccess       = "Success"
	msgRequestFailed = "API request failed"
	msgNetworkError  = "Network error"
)

// Ok wraps a parsed payload in a success envelope.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data, Message: msgSuccess}
}

// Fail produces a failure envelope with a human-readable message.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}
