package operation

// NotFoundError signals that the user, its operations array, or an addressed
// operation does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NoUpdatesError signals that a bulk request resolved no transitionable
// operations at all.
type NoUpdatesError struct{}

func (e NoUpdatesError) Error() string {
	return "No operations were updated"
}

// ValidationError signals a malformed request rejected before any write.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}
