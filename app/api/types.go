package api

import (
	"github.com/lysyi3m/ai-inside-digest/app/digest"
)

// CollectionReader is the read side of the digest store.
type CollectionReader interface {
	Load() (*digest.Collection, error)
}

var _ CollectionReader = (*digest.Store)(nil)

type GeneratorInterface interface {
	Run(collection *digest.Collection, selfLink string) (string, error)
}

var _ GeneratorInterface = (*Generator)(nil)

type Handler struct {
	store     CollectionReader
	generator GeneratorInterface
	baseUrl   string
	port      string
	version   string
}
