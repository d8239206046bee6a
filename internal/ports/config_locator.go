package ports

// ConfigLocator finds the directory holding .auditmd.yaml, starting from an
// arbitrary directory or file and walking upward.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
