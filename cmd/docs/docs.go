// Package docs holds the Swagger description of the API served under /swagger.
// Regenerate with: swag init -g cmd/businesshub_backend/main.go -o cmd/docs
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
        "/clients": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "List clients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Create a client", "responses": {"201": {"description": "Created"}}}
        },
        "/clients/stats": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Client statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/clients/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Get a client", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Update a client", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Delete a client", "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/clients/{id}/mark-paid": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["clients"], "summary": "Mark a client's payment as paid", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Create an expense", "responses": {"201": {"description": "Created"}}}
        },
        "/expenses/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Expense summary", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Get an expense", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Update an expense", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete an expense", "responses": {"204": {"description": "No Content"}}}
        },
        "/employees": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "List employees", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Create an employee", "responses": {"201": {"description": "Created"}}}
        },
        "/employees/stats": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Employee statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/employees/departments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Departments offered for new employees", "responses": {"200": {"description": "OK"}}}
        },
        "/employees/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Get an employee", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Update an employee", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Delete an employee", "responses": {"204": {"description": "No Content"}}}
        },
        "/payments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "List payments", "responses": {"200": {"description": "OK"}}}
        },
        "/dashboard": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/data/export": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["data"], "summary": "Export all data", "responses": {"200": {"description": "OK"}}}
        },
        "/data/import": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["data"], "summary": "Import data", "responses": {"200": {"description": "OK"}, "400": {"description": "Import failed. Invalid file."}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Business Hub API",
	Description:      "Clients, expenses, employees and derived payments of a small business.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
