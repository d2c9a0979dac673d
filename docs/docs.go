// Package docs holds the swagger document served at /swagger. Paths are
// written against the annotations in controllers and registered with swag.
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
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/api/auth/validate": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Check the access password",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"description": "Password",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/controllers.validateRequest"
						}
					}
				]
			}
		},
		"/api/meals/analyze": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "Log a meal from a photo",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "file",
						"description": "Meal photo",
						"name": "image",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Owner",
						"name": "userId",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "breakfast, lunch, dinner, snack or meal",
						"name": "mealType",
						"in": "formData"
					},
					{
						"type": "string",
						"description": "Free-text notes",
						"name": "notes",
						"in": "formData"
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "Log a meal from a description",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"description": "Meal description",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.TextMealInput"
						}
					}
				]
			}
		},
		"/api/meals/{mealId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "Get a meal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Meal ID",
						"name": "mealId",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "Partially update a meal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Meal ID",
						"name": "mealId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to overwrite",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.MealPatch"
						}
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "Delete a meal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Meal ID",
						"name": "mealId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/users/{userId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get a user with recent activity",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Partially update a user profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to overwrite",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.ProfilePatch"
						}
					}
				]
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Create a user profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Ignored",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Profile",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.ProfileInput"
						}
					}
				]
			}
		},
		"/api/users/{userId}/meals": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"meals"
				],
				"summary": "List a user's meals",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Max meals (default 50)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Range start",
						"name": "from",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Range end",
						"name": "to",
						"in": "query"
					}
				]
			}
		},
		"/api/users/{userId}/goals": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "List a user's goals, newest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Create a goal",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Goal",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.GoalInput"
						}
					}
				]
			}
		},
		"/api/users/{userId}/goals/active": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Get the active goal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/goals/{goalId}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"goals"
				],
				"summary": "Partially update a goal",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Goal ID",
						"name": "goalId",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to overwrite",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.GoalPatch"
						}
					}
				]
			}
		},
		"/api/users/{userId}/progress": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"progress"
				],
				"summary": "List body measurements, latest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"progress"
				],
				"summary": "Record body measurements",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"description": "Measurements",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.ProgressInput"
						}
					}
				]
			}
		},
		"/api/families": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"families"
				],
				"summary": "Create a family",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"description": "Family",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.FamilyInput"
						}
					}
				]
			}
		},
		"/api/families/{familyId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"families"
				],
				"summary": "Get a family with its members",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Family ID",
						"name": "familyId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/users/{userId}/families": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"families"
				],
				"summary": "List the families a user belongs to",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/users/{userId}/analytics/weekly": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Daily intake against the active goal for one week",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "userId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "First day (YYYY-MM-DD)",
						"name": "weekStart",
						"in": "query"
					}
				]
			}
		}
	},
	"definitions": {
		"controllers.validateRequest": {
			"type": "object",
			"properties": {
				"password": {
					"type": "string"
				}
			}
		},
		"services.TextMealInput": {
			"type": "object",
			"properties": {
				"userId": {
					"type": "string"
				},
				"mealType": {
					"type": "string"
				},
				"foodDescription": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"services.MealPatch": {
			"type": "object",
			"properties": {
				"mealType": {
					"type": "string"
				},
				"foodItems": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"totalNutrition": {
					"type": "object"
				},
				"imageUrl": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				},
				"confidence": {
					"type": "number"
				}
			}
		},
		"services.ProfileInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"gender": {
					"type": "string"
				},
				"height": {
					"type": "number"
				},
				"weight": {
					"type": "number"
				},
				"activityLevel": {
					"type": "string"
				},
				"dietaryRestrictions": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"allergies": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"services.ProfilePatch": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"gender": {
					"type": "string"
				},
				"height": {
					"type": "number"
				},
				"weight": {
					"type": "number"
				},
				"activityLevel": {
					"type": "string"
				},
				"dietaryRestrictions": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"allergies": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"services.GoalInput": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"targetWeight": {
					"type": "number"
				},
				"targetDate": {
					"type": "string"
				},
				"dailyCalorieTarget": {
					"type": "number"
				},
				"proteinTarget": {
					"type": "number"
				},
				"carbTarget": {
					"type": "number"
				},
				"fatTarget": {
					"type": "number"
				},
				"isActive": {
					"type": "boolean"
				}
			}
		},
		"services.GoalPatch": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"targetWeight": {
					"type": "number"
				},
				"targetDate": {
					"type": "string"
				},
				"dailyCalorieTarget": {
					"type": "number"
				},
				"proteinTarget": {
					"type": "number"
				},
				"carbTarget": {
					"type": "number"
				},
				"fatTarget": {
					"type": "number"
				},
				"isActive": {
					"type": "boolean"
				}
			}
		},
		"services.ProgressInput": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"weight": {
					"type": "number"
				},
				"bodyFatPercentage": {
					"type": "number"
				},
				"muscleMass": {
					"type": "number"
				},
				"measurements": {
					"type": "object",
					"properties": {
						"waist": {
							"type": "number"
						},
						"chest": {
							"type": "number"
						},
						"arms": {
							"type": "number"
						},
						"thighs": {
							"type": "number"
						}
					}
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"services.FamilyInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"adminUserId": {
					"type": "string"
				},
				"members": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"userId": {
								"type": "string"
							},
							"role": {
								"type": "string"
							},
							"nickname": {
								"type": "string"
							}
						}
					}
				},
				"sharedGoals": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"mealPlans": {
					"type": "array",
					"items": {
						"type": "object"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Nutrition AI API",
	Description:      "Meal logging with image recognition and nutrition totals",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
