package platform

// Package platform contains OS integration glue: filesystem helpers,
// default application directories, atomic file writes, and opening news
// links in the system browser.
