// Package telegram provides the Telegram notifier for homework-bot.
//
// This package is internal to homework-bot and wraps telebot for a single
// purpose: delivering text messages to one fixed chat. Delivery failures
// are logged and reported as a boolean, never propagated, because the poll
// loop may need to report the very condition that broke delivery.
package telegram
