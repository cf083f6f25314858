package models

import "time"

// DayKind classifies one employee-day.
type DayKind string

const (
	DayKindWork       DayKind = "work"
	DayKindAbsence    DayKind = "absence"
	DayKindPermission DayKind = "permission"
	DayKindHoliday    DayKind = "holiday"
	DayKindEmpty      DayKind = "empty"
)

// PermissionUnknown marks codes absent from the deployment table.
const PermissionUnknown = "DESCONOCIDO"

// HolidayCode is the display code for site holidays.
const HolidayCode = "FER"

// PermissionCode describes one entry of the fixed absence/permission table.
type PermissionCode struct {
	Kind           DayKind
	PermissionType string
}

// PermissionCodes is the deployment's fixed code table. An absence/permission
// code always takes precedence over a work punch on the same date.
var PermissionCodes = map[string]PermissionCode{
	"F":  {Kind: DayKindAbsence},
	"FI": {Kind: DayKindAbsence},
	"VA": {Kind: DayKindPermission, PermissionType: "VACACIONES"},
	"PM": {Kind: DayKindPermission, PermissionType: "PERMISO_MEDICO"},
	"LG": {Kind: DayKindPermission, PermissionType: "LICENCIA_CON_GOCE"},
	"LS": {Kind: DayKindPermission, PermissionType: "LICENCIA_SIN_GOCE"},
}

// AttendanceRecord is one raw per-punch record for an employee-day, as
// delivered by the backend collaborator. Immutable once loaded.
type AttendanceRecord struct {
	EmployeeID     string     `db:"employee_id" json:"employeeId"`
	Date           time.Time  `db:"date" json:"date"`
	Turno          string     `db:"turno" json:"turno"`
	ExpectedIn     *time.Time `db:"expected_in" json:"expectedIn,omitempty"`
	ExpectedOut    *time.Time `db:"expected_out" json:"expectedOut,omitempty"`
	ActualIn       *time.Time `db:"actual_in" json:"actualIn,omitempty"`
	ActualOut      *time.Time `db:"actual_out" json:"actualOut,omitempty"`
	PermissionCode string     `db:"permission_code" json:"permissionCode,omitempty"`
	MarkingCount   int        `db:"marking_count" json:"markingCount"`
	RawMarkings    string     `db:"raw_markings" json:"rawMarkings,omitempty"`
	CostCenter     string     `db:"cost_center" json:"costCenter,omitempty"`
}

// Holiday is one site-holiday calendar entry.
type Holiday struct {
	Date time.Time `db:"date" json:"date"`
	Site string    `db:"site" json:"site"`
	Name string    `db:"name" json:"name"`
}
