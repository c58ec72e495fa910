package errors

// ErrorType is the kind of failure behind an AppError. The API reports it in
// the X-Error-Kind response header.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorage
)

var (
	typeNames = [...]string{"validation", "not_found", "storage"}
	typeCodes = [...]string{"VALIDATION_FAILED", "NOT_FOUND", "STORAGE_FAILURE"}
)

func (et ErrorType) known() bool {
	return et >= 0 && int(et) < len(typeNames)
}

// String returns the name used in logs and the X-Error-Kind header
func (et ErrorType) String() string {
	if !et.known() {
		return "unknown"
	}
	return typeNames[et]
}

// Code returns the stable machine-readable code for the type
func (et ErrorType) Code() string {
	if !et.known() {
		return "UNKNOWN_ERROR"
	}
	return typeCodes[et]
}

// AppError is a failure raised by the services or the repository.
// Resource is the row type involved ("task", "category", "tag", "user",
// "post") and ID the row's identifier, when known. Op names the storage
// operation that failed.
type AppError struct {
	Type     ErrorType
	Message  string
	Resource string
	ID       string
	Op       string
	Cause    error
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches a target AppError of the same type. A target naming a Resource
// only matches errors about that resource.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t.Type != e.Type {
		return false
	}
	return t.Resource == "" || t.Resource == e.Resource
}
