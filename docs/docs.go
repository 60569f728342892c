// Package docs registra la definición OpenAPI del servicio.
// Code generated by swag; edita las anotaciones, no este archivo.
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
        "/health": {
            "get": {
                "summary": "Estado del servicio",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/locations": {
            "get": {
                "summary": "Registro de sedes",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dashboard/overview": {
            "get": {
                "summary": "KPIs, serie de tiempo y comparación por sede",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer", "description": "Ventana en días (default 14, máx 90)"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dashboard/top-items": {
            "get": {
                "summary": "Ranking de productos más vendidos",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer"},
                    {"name": "location", "in": "query", "type": "string", "description": "Id de sede o all"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Sede desconocida"}
                }
            }
        },
        "/api/dashboard/online-comparison": {
            "get": {
                "summary": "Pedido online promedio vs ticket POS",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dashboard/server-tips": {
            "get": {
                "summary": "Propinas totales por mesero",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer"},
                    {"name": "location", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Sede desconocida"}
                }
            }
        },
        "/api/dashboard/locations/{id}/daily": {
            "get": {
                "summary": "Tarjetas de día de una sede (máx 7, recientes primero)",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "days", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Sede desconocida"}
                }
            }
        },
        "/api/reports/sales.pdf": {
            "get": {
                "summary": "Descarga el reporte PDF de ventas del período",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "PDF"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BBQ Dashboard API",
	Description:      "API de analítica de ventas para Hill Donut Co. y The Red Barn BBQ.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
