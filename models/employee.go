// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Employee is a record of the remote employee catalog.
//
// EmployeeID is assigned by the server on create and is omitted from request
// bodies. The client never holds an authoritative copy: every read re-fetches
// the record from the remote service.
type Employee struct {
	// EmployeeID is the server-assigned identifier.
	EmployeeID string `json:"employeeId,omitempty"`

	// FirstName is the given name of the employee.
	FirstName string `json:"firstName"`

	// LastName is the family name of the employee.
	LastName string `json:"lastName"`

	// DateOfBirth is a calendar date without time zone.
	DateOfBirth Date `json:"dateOfBirth"`

	// ContactInfo groups every way to reach the employee.
	ContactInfo ContactInfo `json:"contactInfo"`
}

// ContactInfo holds the nested contact details of an [Employee].
type ContactInfo struct {
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Address is a postal address.
type Address struct {
	Street   string `json:"street"`
	Town     string `json:"town"`
	PostCode string `json:"postCode"`
}

// SameIdentity reports whether e and other carry the same first and last
// name. The catalog does not guarantee that other attributes round-trip
// byte-for-byte, so lifecycle verification compares names only.
func (e Employee) SameIdentity(other Employee) bool {
	return e.FirstName == other.FirstName && e.LastName == other.LastName
}

// FullName returns "FirstName LastName".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ContainsEmployee reports whether list has an entry with employeeID.
func ContainsEmployee(list []Employee, employeeID string) bool {
	for _, e := range list {
		if e.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
