package session

// Package session holds the UI-thread state of the client: the current
// locale, one news list per locale, the single in-flight fetch flag and the
// transient notification. All methods must be called from the UI thread;
// results from workers arrive only through Poll.
