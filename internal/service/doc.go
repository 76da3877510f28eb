// Package service contains the application's business logic, sitting
// between the HTTP handlers and the store layer. Services own credential
// handling and ownership rules; handlers own only transport concerns.
package service
