// Package models contains the persistence-level records shared by
// repositories, services, and the HTTP layer.
package models

// Employee is an account record. Password always holds a bcrypt hash,
// never the plaintext; it is excluded from JSON output.
type Employee struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Position     string `json:"position"`
}
