package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodySize caps the accepted request body.
const MaxBodySize = 1 << 20

var (
	ErrInvalidBody     = errors.New("contact: invalid request body")
	ErrUnknownCategory = errors.New("contact: unknown request category")
)

// Submission is one decoded contact-form request.
type Submission struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Message         string `json:"message"`
	NatureOfRequest string `json:"natureOfRequest"`
	Program         string `json:"program"`
	Subject         string `json:"subject"`
	Year            string `json:"year"`
}

// NormalizedYear drops the first "Year " in the year field, so "Year 2"
// becomes "2" and "Year Year 3" becomes "Year 3".
func (s Submission) NormalizedYear() string {
	return strings.Replace(s.Year, "Year ", "", 1)
}

// FullName is the sender's first and last name separated by a space.
func (s Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// wireSubmission tells an absent or null year apart from an empty one.
// The outer Year shadows Submission.Year during decoding.
type wireSubmission struct {
	Submission
	Year *string `json:"year"`
}

// DecodeSubmission reads a single JSON object from the request body.
// The Content-Type header is not inspected. Unknown fields are ignored.
// The year field must be present because it is normalized before rendering;
// the other fields render empty when absent.
func DecodeSubmission(w http.ResponseWriter, r *http.Request) (Submission, error) {
	if r.Body == nil {
		return Submission{}, fmt.Errorf("%w: empty body", ErrInvalidBody)
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))

	var wire *wireSubmission
	if err := dec.Decode(&wire); err != nil {
		if errors.Is(err, io.EOF) {
			return Submission{}, fmt.Errorf("%w: empty body", ErrInvalidBody)
		}
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if wire == nil {
		return Submission{}, fmt.Errorf("%w: body is null", ErrInvalidBody)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Submission{}, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}
	if wire.Year == nil {
		return Submission{}, fmt.Errorf("%w: year is missing", ErrInvalidBody)
	}

	sub := wire.Submission
	sub.Year = *wire.Year
	return sub, nil
}
