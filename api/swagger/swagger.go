package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ReqTrack API",
        "description": "Request tracking prototype: quotation requests and purchase requisitions",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Requests", "description": "Document submission and register"},
        {"name": "Workflow", "description": "Events, attachments and shipping"},
        {"name": "Exports", "description": "PDF printouts and CSV registers"},
        {"name": "Session", "description": "Shared session role flag"},
        {"name": "Admin", "description": "Maintenance endpoints"}
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
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/requests": {
            "get": {
                "tags": ["Requests"],
                "summary": "List the register for one document kind",
                "parameters": [
                    {"name": "kind", "in": "query", "required": true, "type": "string", "enum": ["QR", "PR"]},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a new QR or PR document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRequestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export a filtered register as CSV",
                "parameters": [
                    {"name": "kind", "in": "query", "required": true, "type": "string", "enum": ["QR", "PR"]},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV file"}
                }
            }
        },
        "/api/v1/requests/{docNo}": {
            "get": {
                "tags": ["Requests"],
                "summary": "Get one document by number",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/{docNo}/hits": {
            "get": {
                "tags": ["Requests"],
                "summary": "Count search hits inside one document",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/{docNo}/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export one document as a printable PDF",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF file"}
                }
            }
        },
        "/api/v1/requests/{docNo}/events": {
            "post": {
                "tags": ["Workflow"],
                "summary": "Apply a workflow event (admin, except REQUEST_EDIT)",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplyEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/{docNo}/attachments": {
            "post": {
                "tags": ["Workflow"],
                "summary": "Record an attachment in a document bucket (admin)",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddAttachmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/{docNo}/attachments/{bucket}/{id}": {
            "delete": {
                "tags": ["Workflow"],
                "summary": "Remove an attachment record from a bucket (admin)",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"},
                    {"name": "bucket", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/requests/{docNo}/shipping": {
            "put": {
                "tags": ["Workflow"],
                "summary": "Replace the shipping record of a QR document (admin)",
                "parameters": [
                    {"name": "docNo", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateShippingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/role": {
            "get": {
                "tags": ["Session"],
                "summary": "Get the current session role",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Session"],
                "summary": "Toggle between admin and requester mode",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/admin/reset": {
            "post": {
                "tags": ["Admin"],
                "summary": "Discard persisted state and reinstall fixtures (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ItemInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "model": {"type": "string"},
                "code": {"type": "string"},
                "qty": {"type": "number"},
                "unit": {"type": "string"},
                "detail": {"type": "string"},
                "remark": {"type": "string"},
                "price": {"type": "number"},
                "photos": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["name", "qty", "unit"]
        },
        "CreateRequestRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["QR", "PR"]},
                "docDate": {"type": "string"},
                "requester": {"type": "string"},
                "phone": {"type": "string"},
                "project": {"type": "string"},
                "urgency": {"type": "string"},
                "note": {"type": "string"},
                "subject": {"type": "string"},
                "forJob": {"type": "string"},
                "remark": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/ItemInput"}}
            },
            "required": ["kind", "requester", "phone", "items"]
        },
        "ApplyEventRequest": {
            "type": "object",
            "properties": {
                "event": {"type": "string"},
                "actor": {"type": "string"},
                "detail": {"type": "string"}
            },
            "required": ["event"]
        },
        "AddAttachmentRequest": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "filename": {"type": "string"},
                "uploader": {"type": "string"}
            },
            "required": ["bucket", "filename"]
        },
        "UpdateShippingRequest": {
            "type": "object",
            "properties": {
                "etd": {"type": "string"},
                "eta": {"type": "string"},
                "tracking": {"type": "string"},
                "notes": {"type": "string"},
                "actor": {"type": "string"}
            }
        },
        "SetRoleRequest": {
            "type": "object",
            "properties": {
                "admin": {"type": "boolean"}
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
