package feed

// Package feed turns provider-specific JSON responses into uniform news items.
// Each provider validates its envelope, then extracts fields from loosely typed
// records; a record with a missing, empty or wrong-typed field is skipped.
