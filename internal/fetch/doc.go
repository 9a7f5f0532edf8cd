package fetch

// Package fetch implements the background fetch pipeline: one worker
// goroutine per dispatched refresh performs the HTTP request, normalizes the
// provider response, persists non-empty results to the cache, and reports the
// outcome on the update channel.
