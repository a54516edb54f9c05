// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderDirect fans events out in-process.
	PubSubProviderDirect = "direct"
	// PubSubProviderLocal posts push envelopes to a local worker endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to a Google Cloud Pub/Sub topic.
	PubSubProviderGoogle = "google"
)
