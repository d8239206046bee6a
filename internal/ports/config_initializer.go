package ports

type ConfigInitializer interface {
	Init(dir string, force bool) (path string, err error)
}
