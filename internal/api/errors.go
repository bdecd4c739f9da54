package api

import "fmt"

// APIError is any non-2xx reply from Riot. Status and body are passed through untouched.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api error: %d: %s", e.StatusCode, e.Body)
}
