package models

import "time"

type Policy struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Version     string    `json:"version"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	LastUpdated time.Time `json:"last_updated"`
}
