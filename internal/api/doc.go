// Package api contains the HTTP handlers, request/response models and
// error mapping for the blogging backend's JSON API.
package api
