// Package constants holds shared domain-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Blob storage provider types.
const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
)

// OnboardingCompletedTopic is the FCM topic the completion push is sent to.
const OnboardingCompletedTopic = "onboarding-completed"
