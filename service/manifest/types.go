package manifest

type service struct{}

// Service is the filesystem boundary for manifest content.
type Service interface {
	Read(path string) (string, error)
	Write(path string, content string) error
}
