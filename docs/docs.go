// Package docs регистрирует swagger-документ, который отдаёт /swagger.
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
        "/cart": {
            "get": {"produces": ["application/json"], "tags": ["cart"], "summary": "Get cart", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.cartResp"}}}},
            "delete": {"tags": ["cart"], "summary": "Clear cart", "responses": {"204": {"description": "No Content"}}}
        },
        "/cart/items": {
            "post": {
                "consumes": ["application/json"], "produces": ["application/json"], "tags": ["cart"], "summary": "Add item to cart",
                "parameters": [{"description": "Item", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CartItem"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/httpapi.cartResp"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/categories": {
            "get": {"produces": ["application/json"], "tags": ["products"], "summary": "List categories", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/view.Option"}}}}}
        },
        "/checkout": {
            "get": {"description": "Mounts a checkout flow when none is active. An empty cart with no confirmation showing redirects to the cart page once.", "produces": ["application/json"], "tags": ["checkout"], "summary": "Open or refresh the checkout page", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/checkout.View"}}}},
            "delete": {"tags": ["checkout"], "summary": "Leave the checkout page", "responses": {"204": {"description": "No Content"}}}
        },
        "/checkout/status": {
            "get": {"description": "Renders the mounted checkout page without mounting a new one, so a finished order stays visible.", "produces": ["application/json"], "tags": ["checkout"], "summary": "Checkout page status", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/checkout.View"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}}
        },
        "/checkout/continue": {
            "post": {"produces": ["application/json"], "tags": ["checkout"], "summary": "Continue shopping", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/checkout.View"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}}
        },
        "/checkout/orders": {
            "post": {"produces": ["application/json"], "tags": ["checkout"], "summary": "Place order", "responses": {"202": {"description": "Accepted", "schema": {"$ref": "#/definitions/checkout.View"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}}
        },
        "/edit": {
            "patch": {
                "consumes": ["application/json"], "produces": ["application/json"], "tags": ["edit"], "summary": "Change a draft field",
                "parameters": [{"description": "Field change", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.changeReq"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Card"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/edit/commit": {
            "post": {"produces": ["application/json"], "tags": ["edit"], "summary": "Save the draft", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Card"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}}
        },
        "/edit/discard": {
            "post": {"tags": ["edit"], "summary": "Discard the draft", "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}}
        },
        "/edit/image": {
            "post": {
                "consumes": ["multipart/form-data"], "produces": ["application/json"], "tags": ["edit"], "summary": "Upload a replacement image",
                "parameters": [{"type": "file", "description": "Image", "name": "image", "in": "formData", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Card"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"], "tags": ["products"], "summary": "List product cards",
                "parameters": [
                    {"type": "string", "description": "Title contains", "name": "q", "in": "query"},
                    {"type": "string", "description": "Category", "name": "category", "in": "query"},
                    {"type": "number", "description": "Min price", "name": "min_price", "in": "query"},
                    {"type": "number", "description": "Max price", "name": "max_price", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/view.Card"}}}}
            },
            "post": {
                "consumes": ["application/json"], "produces": ["application/json"], "tags": ["products"], "summary": "Create local product",
                "parameters": [{"description": "Product", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.productReq"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"], "tags": ["products"], "summary": "Get product by id",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            },
            "put": {
                "consumes": ["application/json"], "produces": ["application/json"], "tags": ["products"], "summary": "Update local product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Update", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.productReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            },
            "delete": {
                "tags": ["products"], "summary": "Delete local product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/products/{id}/click": {
            "post": {
                "description": "Empty target is the card body; edit, delete, save and cancel are the card affordances.",
                "consumes": ["application/json"], "produces": ["application/json"], "tags": ["products"], "summary": "Click a product card",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Click target", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpapi.clickReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.clickResp"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        },
        "/products/{id}/edit": {
            "post": {
                "produces": ["application/json"], "tags": ["edit"], "summary": "Begin editing a local product",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Card"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResp"}}}
            }
        }
    },
    "definitions": {
        "domain.CartItem": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "image": {"type": "string"}, "price": {"type": "number"}, "quantity": {"type": "number"}}},
        "domain.Product": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "price": {"type": "number"}, "image": {"type": "string"}, "rating": {"$ref": "#/definitions/domain.Rating"}, "category": {"type": "string"}, "description": {"type": "string"}, "isLocal": {"type": "boolean"}}},
        "domain.Rating": {"type": "object", "properties": {"rate": {"type": "number"}, "count": {"type": "integer"}}},
        "httpapi.cartResp": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/domain.CartItem"}}, "totals": {"type": "object", "properties": {"totalItems": {"type": "integer"}, "totalPrice": {"type": "number"}}}}},
        "httpapi.changeReq": {"type": "object", "properties": {"field": {"type": "string"}, "value": {"type": "string"}}},
        "checkout.View": {"type": "object", "properties": {"visible": {"type": "boolean"}, "state": {"type": "string"}, "busy": {"type": "boolean"}, "canSubmit": {"type": "boolean"}, "buttonLabel": {"type": "string"}, "lines": {"type": "array", "items": {"type": "object"}}, "summary": {"type": "object", "properties": {"subtotal": {"type": "string"}, "shipping": {"type": "string"}, "total": {"type": "string"}}}, "dialog": {"type": "object"}, "error": {"type": "string"}, "orderRef": {"type": "string"}, "redirect": {"type": "string"}, "location": {"type": "string"}}},
        "httpapi.clickReq": {"type": "object", "properties": {"target": {"type": "string"}}},
        "httpapi.clickResp": {"type": "object", "properties": {"target": {"type": "string"}, "defaultPrevented": {"type": "boolean"}, "location": {"type": "string"}}},
        "httpapi.errorResp": {"type": "object", "properties": {"error": {"type": "string"}}},
        "httpapi.productReq": {"type": "object", "properties": {"title": {"type": "string"}, "price": {"type": "number"}, "image": {"type": "string"}, "category": {"type": "string"}, "description": {"type": "string"}}},
        "view.Card": {"type": "object", "properties": {"key": {"type": "integer"}, "mode": {"type": "string"}, "read": {"type": "object"}, "edit": {"type": "object"}}},
        "view.Option": {"type": "object", "properties": {"value": {"type": "string"}, "label": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9091",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Product cards, edit session, cart and checkout of the storefront.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
