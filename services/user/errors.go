package user

// SuspendedError signals that the account exists but sign-in is blocked by an
// owner-imposed suspension.
type SuspendedError struct{}

func (e SuspendedError) Error() string {
	return "account is suspended"
}

// InactiveError signals that the account has not been activated or has been
// deactivated by its owner.
type InactiveError struct{}

func (e InactiveError) Error() string {
	return "account is not active"
}

// DuplicatePhoneError signals a registration attempt with a phone number that
// already has an account.
type DuplicatePhoneError struct {
	Phone string
}

func (e DuplicatePhoneError) Error() string {
	return "an account already exists for phone " + e.Phone
}
