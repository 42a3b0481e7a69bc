// Package domain contains the core business entity of the application, the
// Task, together with the validation rules every stored task must satisfy.
// It is independent of any storage or delivery mechanism.
package domain
