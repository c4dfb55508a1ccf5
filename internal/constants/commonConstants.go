package constants

// APIStatus is the top-level status field of the response envelope.
type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)
