// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is what every catalog operation hands back to its caller: the
// HTTP status code and the decoded body, unchanged.
type Response[T any] struct {
	// StatusCode is the HTTP status returned by the remote service.
	StatusCode int

	// Data is the decoded response body. It is the zero value when the body
	// was empty or the call failed.
	Data T
}

// CreateEmployeeResponse is the body of a 201 reply to POST /employees.
type CreateEmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"message"`
}

// MessageResponse is the body of update and delete replies and of most
// error replies.
type MessageResponse struct {
	Message string `json:"message"`
}
