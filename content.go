package fsentry

// OperationError is the failure reported by the content operations. It
// identifies the operation that failed, the underlying cause is not
// exposed.
type OperationError struct {
	reason string
}

func (e *OperationError) Error() string {
	return e.reason
}

var (
	// ErrRead is returned by Read when the content cannot be read.
	ErrRead = &OperationError{"Can't read the content."}

	// ErrAppend is returned by Append when the content cannot be
	// appended.
	ErrAppend = &OperationError{"Can't append the given content."}

	// ErrWrite is returned by Write when the content cannot be written.
	ErrWrite = &OperationError{"Can't write the given content."}
)

// Read returns the whole entry content. The error, if any, is always
// ErrRead.
func (e *Entry) Read() (string, error) {
	data, err := e.fs.ReadFile(e.path)
	if err != nil {
		return "", ErrRead
	}

	return string(data), nil
}

// Append appends content to the entry, creating it when missing. The
// error, if any, is always ErrAppend.
func (e *Entry) Append(content string) error {
	if err := e.fs.AppendFile(e.path, []byte(content)); err != nil {
		return ErrAppend
	}

	return nil
}

// Write replaces the entry content, creating the entry when missing. The
// error, if any, is always ErrWrite.
func (e *Entry) Write(content string) error {
	if err := e.fs.WriteFile(e.path, []byte(content)); err != nil {
		return ErrWrite
	}

	return nil
}
