package table

// AlreadyInitialised - Custom error to inform that a table was initialised a second time
type AlreadyInitialised struct {
	msg string
}

// Error - Used to notify that the table already has a bucket array
func (E AlreadyInitialised) Error() string {
	if E.msg == "" {
		return "table already initialised"
	}
	return E.msg
}

// Is - Matches any AlreadyInitialised regardless of message
func (E AlreadyInitialised) Is(target error) bool {
	_, ok := target.(AlreadyInitialised)
	return ok
}

// InvalidArgument - Custom error to inform that a sizing argument is out of range
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an argument is out of range
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Matches any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}
