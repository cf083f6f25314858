package models

import "time"

// Employee is one row of the roster supplied by the backend collaborator.
type Employee struct {
	ID           string     `db:"id" json:"employeeId"`
	NroDoc       string     `db:"nro_doc" json:"nroDoc"`
	FullName     string     `db:"full_name" json:"fullName"`
	Area         string     `db:"area" json:"area"`
	Cargo        string     `db:"cargo" json:"cargo"`
	FechaIngreso *time.Time `db:"fecha_ingreso" json:"fechaIngreso,omitempty"`
	Planilla     string     `db:"planilla" json:"planilla"`
}

// EmployeeFilter scopes roster queries.
type EmployeeFilter struct {
	Area     string
	Planilla string
	Search   string
}
