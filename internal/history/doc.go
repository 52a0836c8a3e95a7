// Package history provides an in-memory log of sent notifications.
//
// This package is internal to homework-bot and records every message the
// bot delivered, both status changes and error reports. It implements a
// publish-subscribe pattern so other components (the status API server,
// SDK consumers) can observe deliveries as they happen.
//
// The main components are:
//
//   - [Log]: Interface defining append, read and subscription operations
//   - [MemoryLog]: In-memory implementation of Log with bounded retention
//   - [Entry]: One delivered notification
//
// The log is designed for concurrent access with proper synchronization.
// Subscribers receive updates via channels with non-blocking sends (slow
// subscribers will miss updates rather than block the system). Nothing is
// persisted: the log lives and dies with the process.
package history
