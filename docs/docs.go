// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns the API name and version",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service banner",
                "responses": {"200": {"description": "API banner", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/api/{user_id}/tasks": {
            "get": {
                "description": "Returns the user's tasks in creation order, optionally filtered by status.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "string", "description": "all, pending or completed (default: all)", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Appends a task to the user's list. Missing optional fields take defaults (Medium, Personal, No Repeat).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"description": "Task data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/{user_id}/tasks/{task_id}": {
            "delete": {
                "description": "Removes a task. Deleting a missing id still succeeds.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Task ID", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/{user_id}/tasks/{task_id}/complete": {
            "patch": {
                "description": "Flips the completed flag of a task. Calling it twice restores the original state.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Toggle task completion",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Task ID", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/chat": {
            "post": {
                "description": "Returns a conversational reply and, when the message asks for it, one task action for the client to apply. Always 200 for a well-formed body, even when the language model is unavailable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat with the assistant",
                "parameters": [
                    {"description": "Message and the client's current tasks", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.chatReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "options": {
                "tags": ["Chat"],
                "summary": "Chat preflight",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "model.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "completed": {"type": "boolean"},
                "priority": {"type": "string", "enum": ["Low", "Medium", "High"]},
                "category": {"type": "string"},
                "dueDate": {"type": "string"},
                "repeat": {"type": "string"}
            }
        },
        "chat.TaskPayload": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "completed": {"type": "boolean"},
                "priority": {"type": "string", "enum": ["Low", "Medium", "High"]},
                "category": {"type": "string"},
                "dueDate": {"type": "string"},
                "repeat": {"type": "string"}
            }
        },
        "http.createReq": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string", "maxLength": 500},
                "description": {"type": "string", "maxLength": 2000},
                "priority": {"type": "string", "enum": ["Low", "Medium", "High"]},
                "category": {"type": "string"},
                "dueDate": {"type": "string"},
                "repeat": {"type": "string"}
            }
        },
        "http.chatReq": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "action": {"type": "string", "enum": ["add_task", "delete_task", "update_task", "complete_task"]},
                "task": {"$ref": "#/definitions/chat.TaskPayload"},
                "task_id": {"type": "integer"},
                "updated_task": {"$ref": "#/definitions/chat.TaskPayload"}
            }
        },
        "response.MessageResp": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "AI Todo API",
	Description:      "To-do backend with task CRUD and an LLM-backed chat assistant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
