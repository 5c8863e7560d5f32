package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Booking Marketplace API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Booking Marketplace API",
    "version": "1.0.0"
  },
  "paths": {
    "/payments/intents": {
      "post": {
        "summary": "Create payment intent",
        "tags": [
          "payments"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreatePaymentIntentRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Intent created"
          },
          "400": {
            "description": "Validation failed"
          },
          "401": {
            "description": "Unauthorized"
          },
          "500": {
            "description": "Payment gateway error"
          }
        }
      }
    },
    "/payments/webhook": {
      "post": {
        "summary": "Gateway webhook",
        "tags": [
          "payments"
        ],
        "responses": {
          "200": {
            "description": "Acknowledged"
          },
          "400": {
            "description": "Invalid webhook"
          },
          "500": {
            "description": "Processing failed, retry"
          }
        },
        "parameters": [
          {
            "name": "Stripe-Signature",
            "in": "header",
            "required": true,
            "schema": {
              "type": "string"
            }
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object"
              }
            }
          }
        }
      }
    },
    "/payments/transactions": {
      "get": {
        "summary": "List my transactions",
        "tags": [
          "payments"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "Transactions"
          },
          "401": {
            "description": "Unauthorized"
          }
        }
      }
    },
    "/register": {
      "post": {
        "summary": "Register user",
        "tags": [
          "users"
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/RegisterRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Registered"
          },
          "400": {
            "description": "Validation failed"
          },
          "409": {
            "description": "Username already exists"
          }
        }
      }
    },
    "/profile": {
      "get": {
        "summary": "Get my profile",
        "tags": [
          "users"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "Profile"
          },
          "404": {
            "description": "Profile not found"
          }
        }
      },
      "put": {
        "summary": "Update my profile",
        "tags": [
          "users"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/UpdateProfileRequest"
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Profile"
          },
          "400": {
            "description": "Validation failed"
          }
        }
      }
    },
    "/save-token": {
      "post": {
        "summary": "Save Expo push token",
        "tags": [
          "users"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/SavePushTokenRequest"
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Saved"
          },
          "400": {
            "description": "Validation failed"
          }
        }
      }
    },
    "/services": {
      "get": {
        "summary": "List services",
        "tags": [
          "catalog"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/products": {
      "get": {
        "summary": "List products",
        "tags": [
          "catalog"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        },
        "parameters": [
          {
            "name": "category",
            "in": "query",
            "required": false,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ]
      }
    },
    "/products/{id}/reviews": {
      "get": {
        "summary": "List product reviews",
        "tags": [
          "catalog"
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "responses": {
          "200": {
            "description": "Reviews"
          },
          "404": {
            "description": "Product not found"
          }
        }
      },
      "post": {
        "summary": "Review a product",
        "tags": [
          "catalog"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateReviewRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created"
          },
          "404": {
            "description": "Product not found"
          },
          "409": {
            "description": "Review already exists"
          }
        }
      }
    },
    "/book": {
      "post": {
        "summary": "Book a service",
        "tags": [
          "orders"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateOrderRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Order created"
          },
          "400": {
            "description": "Validation failed"
          },
          "404": {
            "description": "Service not found"
          }
        }
      }
    },
    "/my-bookings": {
      "get": {
        "summary": "List my bookings",
        "tags": [
          "orders"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    },
    "/feedback": {
      "post": {
        "summary": "Rate a booking",
        "tags": [
          "orders"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateFeedbackRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created"
          },
          "404": {
            "description": "Order not found"
          },
          "409": {
            "description": "Feedback already exists"
          }
        }
      }
    },
    "/support-messages": {
      "get": {
        "summary": "List my support thread",
        "tags": [
          "support"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      },
      "post": {
        "summary": "Send support message",
        "tags": [
          "support"
        ],
        "security": [
          {
            "UserAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateSupportMessageRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Sent"
          },
          "400": {
            "description": "Validation failed"
          }
        }
      }
    },
    "/admin/services": {
      "post": {
        "summary": "Create service",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateServiceRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created"
          },
          "400": {
            "description": "Validation failed"
          }
        }
      }
    },
    "/admin/product-categories": {
      "post": {
        "summary": "Create product category",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateProductCategoryRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created"
          },
          "409": {
            "description": "Category already exists"
          }
        }
      }
    },
    "/admin/products": {
      "post": {
        "summary": "Create product",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/CreateProductRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created"
          },
          "404": {
            "description": "Category not found"
          }
        }
      }
    },
    "/admin/orders/{id}/status": {
      "patch": {
        "summary": "Set order status",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/UpdateOrderStatusRequest"
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Updated"
          },
          "404": {
            "description": "Order not found"
          }
        }
      }
    },
    "/admin/profiles/{user_id}/provider": {
      "patch": {
        "summary": "Set provider flags on a profile",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "parameters": [
          {
            "name": "user_id",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/UpdateProviderStatusRequest"
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Updated"
          },
          "404": {
            "description": "Profile not found"
          }
        }
      }
    },
    "/admin/support-messages/{id}/reply": {
      "post": {
        "summary": "Reply to support message",
        "tags": [
          "admin"
        ],
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {
              "type": "integer",
              "format": "int64"
            }
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "$ref": "#/components/schemas/ReplySupportMessageRequest"
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Sent"
          },
          "404": {
            "description": "Support message not found"
          }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health check",
        "tags": [
          "ops"
        ],
        "responses": {
          "200": {
            "description": "OK"
          }
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "UserAuth": {
        "type": "http",
        "scheme": "basic",
        "description": "Registered username and password"
      },
      "ChannelAuth": {
        "type": "http",
        "scheme": "basic",
        "description": "CHANNEL_ID and CHANNEL_KEY"
      }
    },
    "schemas": {
      "CreatePaymentIntentRequest": {
        "type": "object",
        "properties": {
          "amount": {
            "type": "integer",
            "format": "int64",
            "description": "Amount in minor units"
          },
          "description": {
            "type": "string"
          }
        },
        "required": [
          "amount"
        ]
      },
      "RegisterRequest": {
        "type": "object",
        "properties": {
          "username": {
            "type": "string"
          },
          "email": {
            "type": "string"
          },
          "password": {
            "type": "string"
          },
          "phone_number": {
            "type": "string"
          },
          "gender": {
            "type": "string",
            "enum": [
              "male",
              "female",
              "other"
            ]
          }
        },
        "required": [
          "username",
          "password",
          "phone_number",
          "gender"
        ]
      },
      "UpdateProfileRequest": {
        "type": "object",
        "properties": {
          "phone_number": {
            "type": "string"
          },
          "gender": {
            "type": "string",
            "enum": [
              "male",
              "female",
              "other"
            ]
          },
          "date_of_birth": {
            "type": "string",
            "format": "date"
          },
          "address": {
            "type": "string"
          },
          "city": {
            "type": "string"
          },
          "country": {
            "type": "string"
          },
          "is_service_provider": {
            "type": "boolean"
          },
          "latitude": {
            "type": "number"
          },
          "longitude": {
            "type": "number"
          }
        }
      },
      "SavePushTokenRequest": {
        "type": "object",
        "properties": {
          "expo_push_token": {
            "type": "string"
          }
        },
        "required": [
          "expo_push_token"
        ]
      },
      "CreateReviewRequest": {
        "type": "object",
        "properties": {
          "rating": {
            "type": "integer",
            "minimum": 1,
            "maximum": 5
          },
          "comment": {
            "type": "string"
          }
        },
        "required": [
          "rating"
        ]
      },
      "CreateOrderRequest": {
        "type": "object",
        "properties": {
          "service_id": {
            "type": "integer",
            "format": "int64"
          },
          "appointment_time": {
            "type": "string",
            "format": "date-time"
          }
        },
        "required": [
          "service_id",
          "appointment_time"
        ]
      },
      "CreateFeedbackRequest": {
        "type": "object",
        "properties": {
          "order_id": {
            "type": "integer",
            "format": "int64"
          },
          "rating": {
            "type": "integer",
            "minimum": 1,
            "maximum": 5
          },
          "comment": {
            "type": "string"
          }
        },
        "required": [
          "order_id",
          "rating"
        ]
      },
      "CreateSupportMessageRequest": {
        "type": "object",
        "properties": {
          "message": {
            "type": "string"
          },
          "response_to": {
            "type": "integer",
            "format": "int64"
          }
        },
        "required": [
          "message"
        ]
      },
      "ReplySupportMessageRequest": {
        "type": "object",
        "properties": {
          "message": {
            "type": "string"
          }
        },
        "required": [
          "message"
        ]
      },
      "CreateServiceRequest": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string"
          },
          "description": {
            "type": "string"
          },
          "price": {
            "type": "number"
          },
          "duration_minutes": {
            "type": "integer"
          }
        },
        "required": [
          "name",
          "price",
          "duration_minutes"
        ]
      },
      "CreateProductCategoryRequest": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string"
          }
        },
        "required": [
          "name"
        ]
      },
      "CreateProductRequest": {
        "type": "object",
        "properties": {
          "category_id": {
            "type": "integer",
            "format": "int64"
          },
          "name": {
            "type": "string"
          },
          "description": {
            "type": "string"
          },
          "price": {
            "type": "number"
          }
        },
        "required": [
          "name",
          "price"
        ]
      },
      "UpdateProviderStatusRequest": {
        "type": "object",
        "properties": {
          "is_service_provider": {
            "type": "boolean"
          },
          "is_approved_provider": {
            "type": "boolean"
          }
        }
      },
      "UpdateOrderStatusRequest": {
        "type": "object",
        "properties": {
          "status": {
            "type": "string",
            "enum": [
              "pending",
              "confirmed",
              "completed",
              "cancelled"
            ]
          }
        },
        "required": [
          "status"
        ]
      }
    }
  }
}`
