package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Guidance Schedule API",
        "description": "Counselling session schedule screen: pick a date, pick a time, edit or delete cards",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule Sessions", "description": "Schedule screen state machine"},
        {"name": "Operations", "description": "Health and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Operations"],
                "summary": "Aggregate request and rejection counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Open a schedule screen session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "tags": ["Schedule Sessions"],
                "summary": "Render a schedule session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "404": {"description": "Session not found or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedule Sessions"],
                "summary": "Close a schedule session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Closed"}
                }
            }
        },
        "/api/v1/sessions/{id}/add": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Open the date picker for a new entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/date": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Submit the date picker value",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProposeDateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "422": {"description": "INVALID_DATE", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/time": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Submit the time picker value and commit the entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProposeTimeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "422": {"description": "INVALID_TIME, INVALID_DATE or NO_PENDING_DATE", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/dismiss": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Close the open picker or menu",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/import": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Append entries given as card labels",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportDisplayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "400": {"description": "MALFORMED_DISPLAY_STRING", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/entries/{index}": {
            "delete": {
                "tags": ["Schedule Sessions"],
                "summary": "Delete an entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "404": {"description": "INDEX_OUT_OF_RANGE", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/entries/{index}/menu": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Open the edit/delete menu for an entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "404": {"description": "INDEX_OUT_OF_RANGE", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/entries/{index}/edit": {
            "post": {
                "tags": ["Schedule Sessions"],
                "summary": "Start editing an entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScheduleViewEnvelope"}},
                    "404": {"description": "INDEX_OUT_OF_RANGE", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions/{id}/export": {
            "get": {
                "tags": ["Schedule Sessions"],
                "summary": "Download the schedule",
                "produces": ["text/csv", "application/pdf", "text/calendar"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "ics"]}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ProposeDateRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-10-15"}
            },
            "required": ["date"]
        },
        "ProposeTimeRequest": {
            "type": "object",
            "properties": {
                "hour": {"type": "integer", "minimum": 0, "maximum": 23},
                "minute": {"type": "integer", "minimum": 0, "maximum": 59}
            },
            "required": ["hour", "minute"]
        },
        "ImportDisplayRequest": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"type": "string", "example": "Thursday, 15 09:30"}}
            },
            "required": ["lines"]
        },
        "EntryView": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "display": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "DialogView": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "enum": ["none", "date_picker", "time_picker", "action_menu"]},
                "index": {"type": "integer"},
                "editing": {"type": "boolean"},
                "prefill_date": {"type": "string"},
                "prefill_time": {"type": "string"},
                "pending_date": {"type": "string"}
            }
        },
        "ScheduleView": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/EntryView"}},
                "dialog": {"$ref": "#/definitions/DialogView"}
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
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "ScheduleViewEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/ScheduleView"},
                "error": {"$ref": "#/definitions/APIError"}
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
