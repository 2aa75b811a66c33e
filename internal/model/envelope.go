package model

import "encoding/json"

// Envelope is the wrapper every backend JSON response uses.
// Data is left raw here; typed decoding happens in the api package.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}
