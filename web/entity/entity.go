// Package entity defines data structures used by the web layer of list-ui.
package entity

// Msg is the standard API response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}
