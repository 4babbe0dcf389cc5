package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HR Portal API",
        "description": "Session-aware request, account and notification lists over the HR backend",
        "version": "1.0.0"
    },
    "basePath": "/portal/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "tags": [
        {"name": "Authentication", "description": "Portal sessions"},
        {"name": "Requests", "description": "Home screen request list, filters and exports"},
        {"name": "Review", "description": "HR approval, rejection and booking"},
        {"name": "Accounts", "description": "Administrator account management"},
        {"name": "Notifications", "description": "Notification feed"},
        {"name": "Profile", "description": "Signed-in user and reference data"},
        {"name": "Observability", "description": "Metrics summary"}
    ],
    "parameters": {
        "ViewID": {"name": "X-View-ID", "in": "header", "type": "string", "description": "Keeps list state per browser tab"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "security": [],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {"tags": ["Authentication"], "summary": "Close the current view", "responses": {"204": {"description": "No Content"}}}
        },
        "/requests": {
            "get": {
                "tags": ["Requests"],
                "summary": "Current page of the request list",
                "parameters": [{"$ref": "#/parameters/ViewID"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        },
        "/requests/refresh": {
            "post": {"tags": ["Requests"], "summary": "Refetch requests from the backend", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/requests/search": {
            "put": {
                "tags": ["Requests"],
                "summary": "Set the search term",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SearchRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        },
        "/requests/page": {
            "put": {
                "tags": ["Requests"],
                "summary": "Jump to a page or step next/prev",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/requests/page-size": {
            "put": {
                "tags": ["Requests"],
                "summary": "Change rows per page",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PageSizeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/requests/status": {
            "put": {
                "tags": ["Requests"],
                "summary": "Apply a status card",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FieldFilterRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        },
        "/requests/filters": {
            "put": {
                "tags": ["Requests"],
                "summary": "Replace request filters",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterCriteriaRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}, "400": {"description": "Bad Request"}}
            },
            "delete": {"tags": ["Requests"], "summary": "Clear filters and search", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/requests/date-range": {
            "put": {
                "tags": ["Requests"],
                "summary": "Select a calendar date range",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DateRangeSelection"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}
            }
        },
        "/requests/summary": {
            "get": {"tags": ["Requests"], "summary": "Status card counts", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/requests/export": {
            "get": {
                "tags": ["Requests"],
                "summary": "Download the filtered request list",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}],
                "responses": {"200": {"description": "File"}, "404": {"description": "Exports disabled"}}
            }
        },
        "/requests/flight": {
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a flight request",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/requests/{id}": {
            "get": {
                "tags": ["Requests"],
                "summary": "Request detail",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Requests"],
                "summary": "Delete a request",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}
            }
        },
        "/requests/{id}/approve": {
            "put": {
                "tags": ["Review"],
                "summary": "Approve a pending request",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Not pending"}}
            }
        },
        "/requests/{id}/reject": {
            "put": {
                "tags": ["Review"],
                "summary": "Reject a pending request",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Not pending"}}
            }
        },
        "/requests/{id}/booking": {
            "post": {
                "tags": ["Review"],
                "summary": "Record booking details for an approved request",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Not approved"}}
            }
        },
        "/accounts": {
            "get": {"tags": ["Accounts"], "summary": "Current page of the account list", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}},
            "post": {"tags": ["Accounts"], "summary": "Register an account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/accounts/role": {
            "put": {"tags": ["Accounts"], "summary": "Filter accounts by role", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/accounts/{id}": {
            "put": {"tags": ["Accounts"], "summary": "Edit an account", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Accounts"], "summary": "Delete an account", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Own account"}}}
        },
        "/notifications": {
            "get": {"tags": ["Notifications"], "summary": "Visible notifications", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/notifications/filter": {
            "put": {"tags": ["Notifications"], "summary": "Toggle All/Read/Unread", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/notifications/more": {
            "post": {"tags": ["Notifications"], "summary": "Show one more batch", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}}}
        },
        "/notifications/{id}/read": {
            "put": {"tags": ["Notifications"], "summary": "Mark a notification as read", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/reference-data": {
            "get": {"tags": ["Profile"], "summary": "Departments, form types, statuses, purposes, approvers and roles", "responses": {"200": {"description": "OK"}}}
        },
        "/me": {
            "get": {"tags": ["Profile"], "summary": "Current user credentials", "responses": {"200": {"description": "OK"}}}
        },
        "/me/profile": {
            "get": {"tags": ["Profile"], "summary": "Current user profile", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Profile"], "summary": "Update current user profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/metrics/summary": {
            "get": {"tags": ["Observability"], "summary": "Portal metrics summary", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SearchRequest": {
            "type": "object",
            "properties": {"term": {"type": "string"}}
        },
        "FieldFilterRequest": {
            "type": "object",
            "properties": {"value": {"type": "string"}}
        },
        "FilterCriteriaRequest": {
            "type": "object",
            "properties": {
                "equals": {"type": "object", "additionalProperties": {"type": "string"}},
                "ranges": {"type": "object", "additionalProperties": {"$ref": "#/definitions/DateRange"}}
            }
        },
        "DateRange": {
            "type": "object",
            "properties": {
                "from": {"type": "string", "format": "date"},
                "to": {"type": "string", "format": "date"}
            }
        },
        "DateRangeSelection": {
            "type": "object",
            "required": ["dimension"],
            "properties": {
                "dimension": {"type": "string", "enum": ["submitted", "departure", "return", "business_start", "business_end"]},
                "from": {"type": "string", "format": "date"},
                "to": {"type": "string", "format": "date"}
            }
        },
        "PageRequest": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "action": {"type": "string", "enum": ["next", "prev"]}
            }
        },
        "PageSizeRequest": {
            "type": "object",
            "required": ["page_size"],
            "properties": {"page_size": {"type": "integer"}}
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {
                    "type": "object",
                    "properties": {
                        "state": {"type": "string", "enum": ["loading", "ready", "empty", "error"]},
                        "error": {"type": "string"}
                    }
                }
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
