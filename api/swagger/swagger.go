package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Asistencia API",
        "description": "Attendance pivot report service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Reports", "description": "Attendance pivot reports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/reports/weekly-attendance": {
            "get": {
                "tags": ["Reports"],
                "summary": "Weekly attendance pivot report",
                "parameters": [
                    {"name": "start", "in": "query", "required": true, "type": "string", "description": "Range start (YYYY-MM-DD)"},
                    {"name": "end", "in": "query", "required": true, "type": "string", "description": "Range end (YYYY-MM-DD)"},
                    {"name": "area", "in": "query", "type": "string"},
                    {"name": "planilla", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid range or parameters"}
                }
            }
        },
        "/reports/markings": {
            "get": {
                "tags": ["Reports"],
                "summary": "Markings pivot report",
                "parameters": [
                    {"name": "start", "in": "query", "required": true, "type": "string", "description": "Range start (YYYY-MM-DD)"},
                    {"name": "end", "in": "query", "required": true, "type": "string", "description": "Range end (YYYY-MM-DD)"},
                    {"name": "area", "in": "query", "type": "string"},
                    {"name": "planilla", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid range or parameters"}
                }
            }
        },
        "/reports/cost-center": {
            "get": {
                "tags": ["Reports"],
                "summary": "Cost center pivot report",
                "parameters": [
                    {"name": "start", "in": "query", "required": true, "type": "string", "description": "Range start (YYYY-MM-DD)"},
                    {"name": "end", "in": "query", "required": true, "type": "string", "description": "Range end (YYYY-MM-DD)"},
                    {"name": "area", "in": "query", "type": "string"},
                    {"name": "planilla", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid range or parameters"}
                }
            }
        },
        "/reports/{variant}/export.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a pivot report as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "variant", "in": "path", "required": true, "type": "string", "enum": ["weekly-attendance", "markings", "cost-center"]},
                    {"name": "start", "in": "query", "required": true, "type": "string", "description": "Range start (YYYY-MM-DD)"},
                    {"name": "end", "in": "query", "required": true, "type": "string", "description": "Range end (YYYY-MM-DD)"},
                    {"name": "area", "in": "query", "type": "string"},
                    {"name": "planilla", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV file"},
                    "400": {"description": "Invalid range or parameters"}
                }
            }
        }
    },
    "definitions": {
        "Report": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "variant": {"type": "string"},
                "dateRange": {"$ref": "#/definitions/DateRange"},
                "headers": {"type": "array", "items": {"type": "string"}},
                "weekGroups": {"type": "array", "items": {"$ref": "#/definitions/WeekGroup"}},
                "employees": {"type": "array", "items": {"$ref": "#/definitions/EmployeePivot"}},
                "summary": {"$ref": "#/definitions/Summary"}
            }
        },
        "DateRange": {
            "type": "object",
            "properties": {
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "WeekGroup": {
            "type": "object",
            "properties": {
                "weekNumber": {"type": "integer"},
                "dates": {"type": "array", "items": {"type": "string"}},
                "dayNames": {"type": "array", "items": {"type": "string"}},
                "dayNumbers": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "EmployeePivot": {
            "type": "object",
            "properties": {
                "itemNumber": {"type": "integer"},
                "employee": {"$ref": "#/definitions/Employee"},
                "weekData": {"type": "array", "items": {"$ref": "#/definitions/WeekData"}},
                "globalTotals": {"$ref": "#/definitions/Totals"}
            }
        },
        "Employee": {
            "type": "object",
            "properties": {
                "employeeId": {"type": "string"},
                "nroDoc": {"type": "string"},
                "fullName": {"type": "string"},
                "area": {"type": "string"},
                "cargo": {"type": "string"},
                "planilla": {"type": "string"}
            }
        },
        "WeekData": {
            "type": "object",
            "properties": {
                "weekNumber": {"type": "integer"},
                "turno": {"type": "string"},
                "dayValues": {"type": "array", "items": {"$ref": "#/definitions/DayValue"}},
                "weekTotals": {"$ref": "#/definitions/Totals"}
            }
        },
        "DayValue": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "type": {"type": "string"},
                "value": {"type": "number"},
                "displayValue": {"type": "string"},
                "code": {"type": "string"},
                "specificPermissionType": {"type": "string"},
                "horasTrabajadas": {"type": "number"},
                "horasExtras": {"type": "number"},
                "markingCount": {"type": "integer"},
                "rawMarkings": {"type": "string"},
                "costCenter": {"type": "string"}
            }
        },
        "Totals": {
            "type": "object",
            "properties": {
                "horasTrabajadas": {"type": "number"},
                "horasExtras": {"type": "number"},
                "marcajes": {"type": "integer"},
                "diasTrabajados": {"type": "integer"},
                "ausencias": {"type": "integer"},
                "permisos": {"type": "integer"}
            }
        },
        "Summary": {
            "type": "object",
            "properties": {
                "totalEmployees": {"type": "integer"},
                "totalWorkingDays": {"type": "integer"},
                "totalAbsences": {"type": "integer"},
                "totalPermissions": {"type": "integer"},
                "conceptCounts": {"type": "object"},
                "markingsDistribution": {"type": "object"},
                "costCenterHours": {"type": "object"},
                "weekSummaries": {"type": "array", "items": {"type": "object"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/Report"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
