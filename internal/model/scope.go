package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the caller through usecases. Every request is
// bound to one agency workspace.
type Scope struct {
	WorkspaceID string
	UserID      string
}
