package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire form of Comment.Date: UTC, always three fractional digits
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Comment represents a comment record. Date is assigned by the server.
type Comment struct {
	Name    string    `json:"name"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// CommentInput is the client-supplied part of a comment
type CommentInput struct {
	Name    string `json:"name" form:"name"`
	Comment string `json:"comment" form:"comment"`
}

// FormatDate renders t in DateLayout
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

type commentFields Comment

// MarshalJSON writes Date in DateLayout
func (c Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		commentFields
		Date string `json:"date"`
	}{commentFields(c), FormatDate(c.Date)})
}

// UnmarshalJSON accepts any RFC 3339 date
func (c *Comment) UnmarshalJSON(data []byte) error {
	var aux struct {
		commentFields
		Date string `json:"date"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*c = Comment(aux.commentFields)
	if aux.Date == "" {
		return nil
	}
	date, err := time.Parse(time.RFC3339Nano, aux.Date)
	if err != nil {
		return fmt.Errorf("invalid comment date %q: %w", aux.Date, err)
	}
	c.Date = date
	return nil
}
