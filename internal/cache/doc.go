package cache

// Package cache persists the last good news list of each locale as a JSON
// array on disk and restores it at startup. Reads never fail: a missing or
// malformed file yields an empty list for that locale only.
