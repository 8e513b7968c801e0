// Package docs serves the OpenAPI description of the HTTP API.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/ratings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "List a user's ratings",
                "parameters": [
                    {"type": "string", "description": "respondent identifier", "name": "id_user", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Rating"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Submit a course rating",
                "parameters": [
                    {"description": "rating", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RatingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Rating"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            }
        },
        "/saved-answer": {
            "get": {
                "produces": ["application/json"],
                "tags": ["saved-answer"],
                "summary": "List a user's saved answers",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "id_user", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.SavedAnswer"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["saved-answer"],
                "summary": "Save an answer",
                "parameters": [
                    {"description": "saved answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SavedAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SavedAnswer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            }
        },
        "/skill-assessment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assessment"],
                "summary": "List the questions of a learning path",
                "parameters": [
                    {"type": "string", "description": "learning path", "name": "learning_path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Question"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            }
        },
        "/answer-assessment": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assessment"],
                "summary": "List the answer choices of a learning path",
                "parameters": [
                    {"type": "string", "description": "learning path", "name": "learning_path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Answer"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            }
        },
        "/reviews/{path}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["review"],
                "summary": "Review a learning path's saved answers",
                "parameters": [
                    {"type": "string", "description": "learning path", "name": "path", "in": "path", "required": true},
                    {"type": "string", "description": "user id", "name": "id_user", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/predict": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendation"],
                "summary": "Recommend jobs for a user",
                "parameters": [
                    {"description": "user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.predictRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RecommendationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.predictRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {"user_id": {"type": "integer"}}
        },
        "model.Rating": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "respondent_identifier": {"type": "integer"},
                "course_name": {"type": "string"},
                "rating": {"type": "number"}
            }
        },
        "model.SavedAnswer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "id_user": {"type": "integer"},
                "id_assessment": {"type": "integer"},
                "id_answer": {"type": "integer"}
            }
        },
        "model.Question": {
            "type": "object",
            "properties": {
                "id_assessment": {"type": "integer"},
                "question": {"type": "string"},
                "learning_path": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "model.Answer": {
            "type": "object",
            "properties": {
                "id_answer": {"type": "integer"},
                "id_assessment": {"type": "integer"},
                "point": {"type": "integer"},
                "text": {"type": "string"},
                "learning_path": {"type": "string"}
            }
        },
        "service.RatingRequest": {
            "type": "object",
            "properties": {
                "respondent_identifier": {"type": "integer"},
                "course_name": {"type": "string"},
                "rating": {"type": "number"}
            }
        },
        "service.SavedAnswerRequest": {
            "type": "object",
            "properties": {
                "id_user": {"type": "integer"},
                "id_assessment": {"type": "integer"},
                "id_answer": {"type": "integer"}
            }
        },
        "service.RecommendationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "array", "items": {"type": "integer"}},
                "position": {"type": "array", "items": {"type": "string"}},
                "similarity": {"type": "array", "items": {"type": "number"}}
            }
        },
        "util.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "util.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Learning Path API",
	Description:      "Ratings, saved answers, assessment review and job recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
