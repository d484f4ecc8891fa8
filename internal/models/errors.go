package models

import "errors"

var (
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrInternalScoring   = errors.New("internal scoring fault")
	ErrUnknownRole       = errors.New("unknown job role")
)
