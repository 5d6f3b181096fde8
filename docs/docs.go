// Package docs holds the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login screen state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.LoginScreen"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login a user",
                "parameters": [
                    {"description": "request body", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Err"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Err"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.LogoutResponse"}}
                }
            }
        },
        "/address/provinces": {
            "get": {
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "List provinces",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProvincesResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/address/form": {
            "get": {
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "Address form state",
                "parameters": [
                    {"type": "integer", "description": "selected province id", "name": "province", "in": "query"},
                    {"type": "integer", "description": "selected district id", "name": "district", "in": "query"},
                    {"type": "integer", "description": "selected subdistrict id", "name": "subdistrict", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AddressFormResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        },
        "/address": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "Save an address",
                "parameters": [
                    {"description": "request body", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.AddressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AddressSubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Err"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Err"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Err"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Err"}}
                }
            }
        }
    },
    "definitions": {
        "request.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "remember_me": {"type": "boolean"}
            }
        },
        "request.AddressRequest": {
            "type": "object",
            "properties": {
                "addr_etc": {"type": "string"},
                "province_id": {"type": "integer"},
                "district_id": {"type": "integer"},
                "subdistrict_id": {"type": "integer"},
                "addr_tel_home": {"type": "string"},
                "house_reg_num": {"type": "string"},
                "addr_type": {"type": "string", "enum": ["current", "permanent"]}
            }
        },
        "response.Notification": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "title": {"type": "string"},
                "text": {"type": "string"},
                "confirm_button_text": {"type": "string"},
                "timer_ms": {"type": "integer"}
            }
        },
        "response.Err": {
            "type": "object",
            "properties": {
                "status_text": {"type": "string"},
                "notification": {"$ref": "#/definitions/response.Notification"}
            }
        },
        "response.LoginScreen": {
            "type": "object",
            "properties": {
                "remembered_username": {"type": "string"},
                "remember_me": {"type": "boolean"},
                "logged_in": {"type": "boolean"}
            }
        },
        "response.LoginResponse": {
            "type": "object",
            "properties": {
                "notification": {"$ref": "#/definitions/response.Notification"},
                "role_info": {"$ref": "#/definitions/response.Notification"},
                "summary": {"type": "object"},
                "summary_text": {"type": "string"}
            }
        },
        "response.LogoutResponse": {
            "type": "object",
            "properties": {
                "notification": {"$ref": "#/definitions/response.Notification"}
            }
        },
        "response.ProvincesResponse": {
            "type": "object",
            "properties": {
                "options": {"type": "array", "items": {"type": "object"}}
            }
        },
        "response.AddressFormResponse": {
            "type": "object",
            "properties": {
                "form": {"type": "object"}
            }
        },
        "response.AddressSubmitResponse": {
            "type": "object",
            "properties": {
                "notification": {"$ref": "#/definitions/response.Notification"},
                "form": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
