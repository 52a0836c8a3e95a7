// Package server provides the optional status API for homework-bot.
//
// This package is internal to homework-bot and serves a small JSON surface
// for observing a running bot: the poll cursor, the last reported error
// and the recent notification history. It carries no UI and is started
// only when a status port is configured.
//
// The main components are:
//
//   - [Server]: HTTP server with graceful, context-driven shutdown
//   - [Snapshot]: Point-in-time view of the bot's state
//   - [SnapshotFunc]: Callback supplying the current snapshot
//
// Users of the homeworkbot library should not need to interact with this
// package directly. The server is managed by Bot.Start.
package server
