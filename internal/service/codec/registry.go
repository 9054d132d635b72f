package codec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/oshokin/easycodec/internal/config"
	"github.com/oshokin/easycodec/internal/utils"
)

// Registry resolves scheme names to codecs. It is not safe for concurrent registration,
// lookups are safe once registration is complete.
type Registry struct {
	// codecs maps lower-case scheme names to codecs.
	codecs map[string]Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// NewDefaultRegistry creates a registry with every built-in scheme, configured from cfg.
func NewDefaultRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()

	r.Register(Base32Codec{})
	r.Register(Base62Codec{})
	r.Register(NewHexCodec(cfg.HexLowercase))
	r.Register(NewRotCodec(int(cfg.RotShift)))
	r.Register(MorseCodec{})

	return r
}

// Register adds c under its name, replacing any codec with the same name.
func (r *Registry) Register(c Codec) {
	r.codecs[strings.ToLower(c.Name())] = c
}

// Lookup returns the codec registered under name, ignoring case.
func (r *Registry) Lookup(name string) (Codec, error) {
	c, ok := r.codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (available: %s)", ErrUnknownScheme, name, strings.Join(r.Names(), ", "))
	}

	return c, nil
}

// Names returns the registered scheme names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Codecs returns the registered codecs ordered by name.
func (r *Registry) Codecs() []Codec {
	return utils.Map(r.Names(), func(name string) Codec {
		return r.codecs[name]
	})
}
