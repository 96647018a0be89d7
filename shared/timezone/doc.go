// Package timezone holds the application location used for storage timestamps.
//
// Call Init once at startup with the APP_TIMEZONE value; until then every
// helper works in UTC. Booking start and end times are opaque strings and
// never pass through this package.
package timezone
