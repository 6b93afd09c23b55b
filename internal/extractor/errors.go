package extractor

import (
	"errors"
	"fmt"
)

var (
	ErrExtraction             = errors.New("extraction failed")
	ErrUnknownReadingType     = errors.New("unknown reading type")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
)

// ExtractionError reports a required element missing from a page,
// which means the source markup has changed.
type ExtractionError struct {
	Field    string
	Selector string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s (%s): %v", e.Field, e.Selector, e.Err)
	}
	return fmt.Sprintf("extract %s: no element matches %q", e.Field, e.Selector)
}

func (e *ExtractionError) Unwrap() error {
	if e.Err != nil {
		return errors.Join(ErrExtraction, e.Err)
	}
	return ErrExtraction
}

type UnknownReadingTypeError struct {
	Label string
}

func (e *UnknownReadingTypeError) Error() string {
	return fmt.Sprintf("unknown reading type %q", e.Label)
}

func (e *UnknownReadingTypeError) Unwrap() error {
	return ErrUnknownReadingType
}

type UnsupportedAudioFormatError struct {
	Format string
}

func (e *UnsupportedAudioFormatError) Error() string {
	return fmt.Sprintf("unsupported audio format %q", e.Format)
}

func (e *UnsupportedAudioFormatError) Unwrap() error {
	return ErrUnsupportedAudioFormat
}
