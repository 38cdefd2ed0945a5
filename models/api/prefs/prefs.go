package prefsapimodels

import "github.com/pkg/errors"

// DirectoryFilters is the staff-directory screen filter blob, persisted as-is.
type DirectoryFilters struct {
	Search     string `json:"search"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Department string `json:"department"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func (r ThemeRequest) Validate() error {
	if r.Theme != "light" && r.Theme != "dark" {
		return errors.New("theme must be light or dark")
	}
	return nil
}
