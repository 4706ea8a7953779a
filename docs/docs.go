// Package docs registers the OpenAPI document served by gin-swagger. It is
// maintained by hand alongside the handler annotations.
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
        "/vote": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Vote"],
                "summary": "Current weekly matchup",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WeeklyVote"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Vote"],
                "summary": "Cast a ballot",
                "parameters": [
                    {"description": "Ballot", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CastVoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CastVoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/faq": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "FAQ",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring filter", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FaqItem"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Timeline",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.TimelineEvent"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/friends": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Friends of the club",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FriendOfClub"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Content"],
                "summary": "Upcoming events",
                "parameters": [
                    {"type": "integer", "description": "Max events (1..50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CalendarEvent"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/calendar.ics": {
            "get": {
                "produces": ["text/calendar"],
                "tags": ["Content"],
                "summary": "Upcoming events as iCalendar",
                "parameters": [
                    {"type": "integer", "description": "Max events (1..50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "VCALENDAR document", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Media"],
                "summary": "Upload a media file",
                "parameters": [
                    {"type": "file", "description": "File to store", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Status"],
                "summary": "Datastore health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Health"}}
                }
            }
        },
        "/storage-status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Status"],
                "summary": "Object storage status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/storage.Status"}}
                }
            }
        }
    },
    "definitions": {
        "domain.WeeklyVote": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "week_id": {"type": "string"},
                "image_a_url": {"type": "string"},
                "image_b_url": {"type": "string"},
                "votes_a": {"type": "integer"},
                "votes_b": {"type": "integer"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.VoteTally": {
            "type": "object",
            "properties": {
                "votes_a": {"type": "integer"},
                "votes_b": {"type": "integer"}
            }
        },
        "domain.FaqItem": {"type": "object"},
        "domain.TimelineEvent": {"type": "object"},
        "domain.FriendOfClub": {"type": "object"},
        "domain.CalendarEvent": {"type": "object"},
        "handlers.CastVoteRequest": {
            "type": "object",
            "properties": {
                "weekId": {"type": "string", "example": "2024-W14"},
                "option": {"type": "string", "enum": ["A", "B"], "example": "A"}
            }
        },
        "handlers.CastVoteResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "votes": {"$ref": "#/definitions/domain.VoteTally"}
            }
        },
        "handlers.UploadResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "code": {"type": "string", "example": "bad_request"},
                "error": {"type": "string"}
            }
        },
        "services.Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["connected", "disconnected"]},
                "timestamp": {"type": "string"}
            }
        },
        "storage.Status": {
            "type": "object",
            "properties": {
                "configured": {"type": "boolean"},
                "bucketName": {"type": "string"},
                "cdnBaseUrl": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Fan Club API",
	Description:      "Weekly vote, feeds, media uploads and status endpoints for the fan club site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
