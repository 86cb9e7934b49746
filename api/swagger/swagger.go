package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Thunder Site",
        "description": "Landing page, event feed and lead form for Thunder Event Systems",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Events", "description": "Showcased sporting events"},
        {"name": "Lead Form", "description": "Per-visitor lead inquiry form"}
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
                    "503": {"description": "Starting or shutting down"}
                }
            }
        },
        "/leads": {
            "post": {
                "tags": ["Lead Form"],
                "summary": "Submit the lead form from the landing page",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "fullName", "in": "formData", "type": "string", "required": true},
                    {"name": "email", "in": "formData", "type": "string", "required": true},
                    {"name": "company", "in": "formData", "type": "string"},
                    {"name": "eventType", "in": "formData", "type": "string", "enum": ["Hospitality Suite", "Pop-up Arena", "Tournament Ownership", "Esports Launch", "Other"]},
                    {"name": "budget", "in": "formData", "type": "string", "enum": ["< $250k", "$250k - $500k", "$500k - $1M", "$1M+", "Undisclosed"]},
                    {"name": "message", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "303": {"description": "Redirect back to the form"},
                    "400": {"description": "Form re-rendered with the validation message"},
                    "409": {"description": "A submission is already in flight"}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "description": "Returns the backend's events, or the built-in showcase list when the backend is unavailable.",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/ResponseEnvelope"},
                                {"properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/events/revalidate": {
            "post": {
                "tags": ["Events"],
                "summary": "Drop the cached event list",
                "description": "Registered only when EVENTS_REVALIDATE_TOKEN is set.",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Cache cleared"},
                    "401": {"description": "Missing or wrong token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Cache unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/form": {
            "get": {
                "tags": ["Lead Form"],
                "summary": "Current lead form state",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/ResponseEnvelope"},
                                {"properties": {"data": {"$ref": "#/definitions/LeadFormSnapshot"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/form/fields": {
            "patch": {
                "tags": ["Lead Form"],
                "summary": "Set one lead form field",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateLeadFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated form", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown field or bad payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/form/submit": {
            "post": {
                "tags": ["Lead Form"],
                "summary": "Submit the lead form",
                "description": "Runs one submission attempt. Backend failures are reported in the outcome with status 200.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Attempt resolved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Required fields missing or invalid", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "A submission is already in flight", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "definitions": {
        "EventRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "venue": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "status": {"type": "string"},
                "primaryImage": {"type": "string"},
                "galleryImages": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "LeadFormFields": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "company": {"type": "string"},
                "eventType": {"type": "string"},
                "budget": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "SubmissionOutcome": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["idle", "success", "error"]},
                "message": {"type": "string"}
            }
        },
        "LeadFormSnapshot": {
            "type": "object",
            "properties": {
                "fields": {"$ref": "#/definitions/LeadFormFields"},
                "outcome": {"$ref": "#/definitions/SubmissionOutcome"},
                "state": {"type": "string", "enum": ["editing", "submitting", "success", "error"]},
                "submitting": {"type": "boolean"}
            }
        },
        "UpdateLeadFieldRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "string"}
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
