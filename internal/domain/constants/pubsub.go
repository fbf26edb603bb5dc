// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted by config.pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types carried on the settings topic.
const (
	EventSettingsUpdated = "settings.updated"
)

// AuthCookieName is the HTTP-only cookie holding the signed session token.
const AuthCookieName = "auth-token"

// LocaleCookieName stores the visitor's preferred language.
const LocaleCookieName = "locale"

// Environment names accepted by config.env.env.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
