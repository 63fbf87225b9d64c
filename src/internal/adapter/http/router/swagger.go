package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Multi-Operator Transaction Engine API Docs</title>
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
    "title": "Multi-Operator Transaction Engine API",
    "version": "1.0.0"
  },
  "paths": {
    "/transactions": {
      "post": {
        "summary": "Execute a transaction",
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
                "type": "object",
                "required": ["operator", "sourceAccount", "amount", "currency"],
                "properties": {
                  "operator": {"type": "string", "enum": ["BANK", "MOBILE_MONEY", "MICROFINANCE"]},
                  "preset": {"type": "string", "enum": ["QUICK_TRANSFER", "FULL_TRANSFER", "INTER_OPERATOR_TRANSFER", "INTERNATIONAL_TRANSFER", "DEPOSIT", "WITHDRAWAL", "BILL_PAYMENT"]},
                  "type": {"type": "string", "enum": ["TRANSFER_INTERNAL", "TRANSFER_INTER_OPERATOR", "TRANSFER_INTERNATIONAL", "DEPOSIT", "WITHDRAWAL", "PAYMENT", "BILL_PAYMENT"]},
                  "sourceAccount": {"type": "string"},
                  "destinationAccount": {"type": "string"},
                  "destinationOperator": {"type": "string"},
                  "amount": {"type": "string"},
                  "currency": {"type": "string"},
                  "targetCurrency": {"type": "string"},
                  "exchangeRate": {"type": "string"},
                  "description": {"type": "string"},
                  "steps": {"type": "array", "items": {"type": "string", "enum": ["VERIFICATION", "FRAUD_CHECK", "CURRENCY_CONVERSION", "LOGGING", "NOTIFICATION"]}},
                  "commissions": {
                    "type": "array",
                    "items": {
                      "type": "object",
                      "required": ["label", "kind", "value"],
                      "properties": {
                        "label": {"type": "string"},
                        "kind": {"type": "string", "enum": ["PERCENTAGE", "FLAT"]},
                        "value": {"type": "string"},
                        "minimum": {"type": "string"},
                        "maximum": {"type": "string"}
                      }
                    }
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transaction executed; success=false on the result for policy failures"},
          "400": {"description": "Validation error"},
          "404": {"description": "Operator not supported"}
        }
      },
      "get": {
        "summary": "List transaction history, or fetch one by ?reference=",
        "security": [
          {
            "ChannelAuth": []
          }
        ],
        "parameters": [
          {
            "name": "reference",
            "in": "query",
            "required": false,
            "schema": {"type": "string"}
          }
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Transaction not found"}
        }
      }
    },
    "/operators": {
      "get": {
        "summary": "List supported operators and their capability surfaces",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/operators/validate-account": {
      "post": {
        "summary": "Validate an account creation against an operator's policy",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["operator", "accountNumber", "clientId", "initialDeposit"],
                "properties": {
                  "operator": {"type": "string", "enum": ["BANK", "MOBILE_MONEY", "MICROFINANCE"]},
                  "accountNumber": {"type": "string"},
                  "clientId": {"type": "string"},
                  "initialDeposit": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Validation outcome"},
          "400": {"description": "Validation error"}
        }
      }
    },
    "/operators/savings-rate": {
      "get": {
        "summary": "Quote the annual savings interest rate for a balance",
        "parameters": [
          {
            "name": "operator",
            "in": "query",
            "required": true,
            "schema": {"type": "string", "enum": ["BANK", "MOBILE_MONEY", "MICROFINANCE"]}
          },
          {
            "name": "balance",
            "in": "query",
            "required": true,
            "schema": {"type": "string"}
          }
        ],
        "responses": {
          "200": {"description": "OK"},
          "400": {"description": "Validation error"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "ChannelAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
