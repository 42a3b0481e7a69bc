// Package api handles incoming HTTP requests for the tasks resource. It
// decodes and validates request input, calls the task service and turns the
// result or error into a JSON response.
//
// Error classification is done with errors.Is and errors.As against the
// sentinel and tagged errors of internal/domain and internal/store; see
// MapErrorToStatusCode.
package api
