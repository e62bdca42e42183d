// Package docs Timetable Editor API.
//
// Swagger-описание API редактора расписания, зарегистрированное в swag
// и отдаваемое по /swagger/*.
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
        "/api/v1/health": {"get": {"tags": ["System"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Dependency unavailable"}}}},
        "/api/v1/stations": {"get": {"tags": ["Timetable"], "summary": "Станции линии", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "STORE_UNAVAILABLE"}}}},
        "/api/v1/trains": {"get": {"tags": ["Timetable"], "summary": "Существующие поезда", "parameters": [{"type": "string", "name": "filter", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/trains/{id}": {"get": {"tags": ["Timetable"], "summary": "Поезд из хранилища", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/trains/{id}/consistency": {"get": {"tags": ["Timetable"], "summary": "Проверка согласованности", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/identifiers/{id}": {"get": {"tags": ["Rules"], "summary": "Разбор номера поезда", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/templates": {"get": {"tags": ["Rules"], "summary": "Шаблоны участков", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/rules/classify": {"post": {"tags": ["Rules"], "summary": "Роль станции", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "INVALID_REQUEST"}}}},
        "/api/v1/rules/autofill": {"post": {"tags": ["Rules"], "summary": "Автозаполнение времени", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "NO_SEED_TIME / UNKNOWN_DIRECTION"}}}},
        "/api/v1/rules/validate": {"post": {"tags": ["Rules"], "summary": "Проверка времени", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "INVALID_TIME"}}}},
        "/api/v1/rules/section": {"post": {"tags": ["Rules"], "summary": "Отметить участок", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "404": {"description": "UNKNOWN_TEMPLATE"}}}},
        "/api/v1/sessions": {"post": {"tags": ["Sessions"], "summary": "Новая сессия редактора", "responses": {"201": {"description": "Created"}}}},
        "/api/v1/sessions/{sid}": {"get": {"tags": ["Sessions"], "summary": "Состояние сессии", "parameters": [{"type": "string", "name": "sid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "SESSION_NOT_FOUND"}}}},
        "/api/v1/sessions/{sid}/load": {"post": {"tags": ["Sessions"], "summary": "Загрузить поезд", "parameters": [{"type": "string", "name": "sid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "UNSAVED_CHANGES / OPERATION_IN_PROGRESS"}}}},
        "/api/v1/sessions/{sid}/dirty": {"post": {"tags": ["Sessions"], "summary": "Отметка несохраненных изменений", "parameters": [{"type": "string", "name": "sid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/sessions/{sid}/save": {"post": {"tags": ["Sessions"], "summary": "Сохранить поезд", "parameters": [{"type": "string", "name": "sid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "502": {"description": "TRAIN_WRITE_FAILED / SYNC_DIVERGED"}}}},
        "/api/v1/sessions/{sid}/train": {"delete": {"tags": ["Sessions"], "summary": "Удалить загруженный поезд", "parameters": [{"type": "string", "name": "sid", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "502": {"description": "TRAIN_WRITE_FAILED / SYNC_DIVERGED"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Timetable Editor API",
	Description:      "Редактор расписания линии Karuizawa - Myoko-Kogen.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
