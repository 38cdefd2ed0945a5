package policyapimodels

import "github.com/pkg/errors"

type PublishRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Version  string `json:"version"`
	Category string `json:"category"`
}

func (r PublishRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}
