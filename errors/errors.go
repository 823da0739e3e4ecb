package errors

import "fmt"

var (
	ErrUnsupportedType    = fmt.Errorf("unsupported type")
	ErrAlreadyPatched     = fmt.Errorf("already patched")
	ErrExceedsSizeLimit   = fmt.Errorf("exceeds size limit")
	ErrNoRecoverableData  = fmt.Errorf("no recoverable data")
	ErrSignatureTooLong   = fmt.Errorf("signature longer than encrypted region")
	ErrMalformedLength    = fmt.Errorf("malformed encrypted length prefix")
	ErrInsufficientSpace  = fmt.Errorf("insufficient free disk space")
	ErrInvalidPattern     = fmt.Errorf("invalid suffix pattern")
	ErrInvalidSignature   = fmt.Errorf("invalid file signature")
	ErrTargetNotDirectory = fmt.Errorf("target is not a directory")
	ErrProcessorPanic     = fmt.Errorf("processor panic")
)
