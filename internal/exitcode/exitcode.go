package exitcode

const (
	Success           = 0
	UsageError        = 1
	ValidationError   = 2
	CounterStoreError = 3
	WriteError        = 4
	GenerationError   = 5
	PartialSuccess    = 6
)
