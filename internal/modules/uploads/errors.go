package uploads

import "errors"

var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	ErrNotAnImage   = errors.New("file is not an image")
)
