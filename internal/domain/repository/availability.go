package repository

// Availability reports whether a database connection was configured.
type Availability interface {
	Configured() bool
}
