// Package practicum provides the HTTP client for the Yandex.Practicum
// homework-statuses API.
//
// This package is internal to homework-bot and handles a single operation:
// fetching homework statuses updated since a given Unix-time cursor. It
// translates transport failures, non-success HTTP statuses and undecodable
// bodies into typed errors; shape validation of the decoded reply is the
// root package's job.
//
// The main components are:
//
//   - [Client]: HTTP client wrapper with per-request timeout and body size limit
//   - [RequestError]: Transport or HTTP-status failure reaching the API
//   - [ParseError]: Response body that cannot be decoded as JSON
//
// Users of the homeworkbot library should not need to interact with this
// package directly. Construction is done through the config package.
package practicum
