package handlers

import (
	"encoding/json"
	"net/http"

	"db-console-api/internal/repositories"
	"db-console-api/pkg/lambda"
)

// Fixed client-facing messages shared by both dispatchers
const (
	MethodNotAllowedMessage = "Method not allowed"
	InternalErrorMessage    = "Internal server error"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse is returned by a successful DELETE. ID echoes the path parameter.
type DeleteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// errorKind classifies a dispatcher error into the response it produces
type errorKind int

const (
	kindInternal errorKind = iota
	kindValidation
	kindNotFound
)

// classify maps the repository error taxonomy onto response kinds
func classify(err error) errorKind {
	switch {
	case err == nil:
		return kindInternal
	case repositories.IsNotFound(err):
		return kindNotFound
	case repositories.IsValidation(err), repositories.IsInvalidID(err):
		return kindValidation
	default:
		return kindInternal
	}
}

// baseHeaders returns the headers carried by every response
func baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// jsonResponse serializes v into a response with the given status
func jsonResponse(status int, v interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode:      status,
		Headers:         baseHeaders(),
		Body:            string(body),
		IsBase64Encoded: false,
	}, nil
}

// errorResponse builds a {"error": message} response
func errorResponse(status int, message string) *lambda.Response {
	resp, err := jsonResponse(status, ErrorResponse{Error: message})
	if err != nil {
		// ErrorResponse always marshals
		panic(err)
	}
	return resp
}

// InternalErrorResponse is the response the entry points return for unhandled errors
func InternalErrorResponse() *lambda.Response {
	return errorResponse(http.StatusInternalServerError, InternalErrorMessage)
}

// preflightResponse answers a CORS preflight request
func preflightResponse(allowHeaders string) *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
			"Access-Control-Allow-Headers": allowHeaders,
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

// clientError converts a classified error into its response
func clientError(err error, kind errorKind) *lambda.Response {
	message := repositories.ClientMessage(err, err.Error())

	if kind == kindNotFound {
		return errorResponse(http.StatusNotFound, message)
	}
	return errorResponse(http.StatusBadRequest, message)
}
