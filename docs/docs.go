// Package docs registers the OpenAPI description served under /swagger.
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
        "/user/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a farmer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/user/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with username or email",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/user/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a refresh token",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}}}
            }
        },
        "/user/auth/forgot-password": {
            "post": {
                "tags": ["auth"],
                "summary": "Send a password reset link",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/user/auth/reset-password": {
            "post": {
                "tags": ["auth"],
                "summary": "Set a new password with a reset token",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Get profile",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Update profile",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/v1/crops": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["crops"],
                "summary": "List crops",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["crops"],
                "summary": "Add a crop",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/crops/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["crops"],
                "summary": "Delete a crop",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/soil-tests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["soil"],
                "summary": "List soil tests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["soil"],
                "summary": "Record a soil test",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/recommendation": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["soil"],
                "summary": "Soil-based fertilizer recommendation",
                "parameters": [
                    {"type": "string", "name": "crop", "in": "query"},
                    {"type": "boolean", "name": "advice", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/predict/options": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["predict"],
                "summary": "Prediction form options",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/predict": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["predict"],
                "summary": "Predict a fertilizer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.PredictRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PredictResponse"}},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/weather": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["weather"],
                "summary": "Weather for the farm location",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Farm dashboard",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string"},
                "confirm_password": {"type": "string"},
                "full_name": {"type": "string"},
                "farm_name": {"type": "string"},
                "location": {"type": "string"},
                "total_land": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "identifier": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "dto.PredictRequest": {
            "type": "object",
            "properties": {
                "crop": {"type": "string"},
                "region": {"type": "string"},
                "month": {"type": "string"},
                "temperature": {"type": "number"},
                "humidity": {"type": "number"},
                "ph": {"type": "number"},
                "moisture": {"type": "number"},
                "N": {"type": "number"},
                "P": {"type": "number"},
                "K": {"type": "number"}
            }
        },
        "dto.PredictResponse": {
            "type": "object",
            "properties": {
                "fertilizer": {"type": "string"},
                "fertilizer_type": {"type": "string"},
                "confidence": {"type": "number"},
                "algorithm": {"type": "string"}
            }
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
	Title:            "AgriDash API",
	Description:      "Farm dashboard with soil-test rules and fertilizer prediction",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
