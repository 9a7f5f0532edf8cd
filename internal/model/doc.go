package model

// Package model defines domain data structures used across the app: normalized
// news items, locales, fetch status and message severity. Structures are plain
// values so they can cross goroutine boundaries by copy.
