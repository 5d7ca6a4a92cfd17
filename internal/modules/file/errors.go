package file

import "errors"

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrDuplicateName    = errors.New("a file with this name already exists")
	ErrInvalidExtension = errors.New("only .stp, .step, .igs or .iges files are allowed")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
)
