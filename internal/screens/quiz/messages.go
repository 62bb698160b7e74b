package quiz

// hintMsg is sent when a hint request completes.
type hintMsg struct {
	index int
	text  string
	err   error
}

// resultStoredMsg is sent once a finished quiz has been persisted.
type resultStoredMsg struct {
	err error
}
