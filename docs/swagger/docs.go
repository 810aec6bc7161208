// Package swagger holds the generated OpenAPI definition.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@petalstore.dev"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/flowers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["flowers"],
                "summary": "List flowers",
                "description": "Lists flowers with pagination, optionally filtered by name substring and color",
                "parameters": [
                    {"type": "integer", "default": 1, "minimum": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "minimum": 1, "maximum": 100, "description": "Items per page", "name": "per_page", "in": "query"},
                    {"type": "string", "description": "Name substring filter (case-insensitive)", "name": "search", "in": "query"},
                    {"type": "string", "description": "Color filter (case-insensitive exact match)", "name": "color", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaginatedFlowersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flowers"],
                "summary": "Create flower",
                "description": "Creates a new flower in the catalog",
                "parameters": [
                    {"description": "Flower creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFlowerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/FlowerEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/flowers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["flowers"],
                "summary": "Get flower",
                "description": "Retrieves a flower by its id",
                "parameters": [
                    {"type": "string", "description": "Flower id (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FlowerEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["flowers"],
                "summary": "Update flower",
                "description": "Updates the provided fields of an existing flower",
                "parameters": [
                    {"type": "string", "description": "Flower id (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Flower update request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFlowerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FlowerEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["flowers"],
                "summary": "Delete flower",
                "description": "Removes a flower from the catalog",
                "parameters": [
                    {"type": "string", "description": "Flower id (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "FlowerResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440001"},
                "name": {"type": "string", "example": "Rose"},
                "color": {"type": "string", "example": "red"},
                "description": {"type": "string", "example": "A beautiful red rose"},
                "price": {"type": "number", "example": 25000},
                "stock": {"type": "integer", "example": 100},
                "created_at": {"type": "string", "example": "2024-12-11T00:00:00Z"},
                "updated_at": {"type": "string", "example": "2024-12-11T00:00:00Z"}
            }
        },
        "FlowerEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/FlowerResponse"},
                "message": {"type": "string", "example": "Flower created successfully"}
            }
        },
        "PaginatedFlowersResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {
                    "type": "object",
                    "properties": {
                        "data": {"type": "array", "items": {"$ref": "#/definitions/FlowerResponse"}},
                        "total": {"type": "integer", "example": 42},
                        "page": {"type": "integer", "example": 1},
                        "per_page": {"type": "integer", "example": 10},
                        "total_pages": {"type": "integer", "example": 5}
                    }
                }
            }
        },
        "CreateFlowerRequest": {
            "type": "object",
            "required": ["name", "color"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Rose"},
                "color": {"type": "string", "maxLength": 50, "example": "red"},
                "description": {"type": "string", "example": "A beautiful red rose"},
                "price": {"type": "number", "minimum": 0, "example": 25000},
                "stock": {"type": "integer", "minimum": 0, "example": 100}
            }
        },
        "UpdateFlowerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Red Rose"},
                "color": {"type": "string", "maxLength": 50, "example": "crimson"},
                "description": {"type": "string", "example": "A deep crimson rose"},
                "price": {"type": "number", "minimum": 0, "example": 30000},
                "stock": {"type": "integer", "minimum": 0, "example": 150}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "flower not found"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "PetalStore API",
	Description:      "Flower catalog API built with DDD and Clean Architecture.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
