package driver

// FileStatus tracks one file through the diagnose pipeline.
type FileStatus uint8

const (
	StatusQueued FileStatus = iota
	StatusParsing
	StatusDone
	StatusCached
	StatusError
)

// FileEvent is a pipeline progress notification.
type FileEvent struct {
	Path   string
	Status FileStatus
	// Findings is set on StatusDone and StatusCached.
	Findings int
}
