package catalog

import (
	"maps"

	"github.com/alnah/go-greenar/internal/assets"
	"github.com/alnah/go-greenar/internal/fileutil"
)

// AssetResolver resolves asset paths for a plant name.
// *assets.Resolver satisfies it.
type AssetResolver interface {
	Resolve(name, override string, class assets.Class) string
	Companion(primary string) string
}

// Enrich returns a copy of plants with ModelURL, IOSModelURL and ImageURL
// filled in. URLs already present on a record are overrides and are kept
// verbatim. Resolved paths are published under baseURL when it is set.
func Enrich(plants []Plant, r AssetResolver, baseURL string) []Plant {
	out := make([]Plant, len(plants))
	for i, p := range plants {
		out[i] = enrichOne(p, r, baseURL)
	}
	return out
}

func enrichOne(p Plant, r AssetResolver, baseURL string) Plant {
	model := r.Resolve(p.Name, p.ModelURL, assets.ClassModel)
	image := r.Resolve(p.Name, p.ImageURL, assets.ClassImage)

	ios := p.IOSModelURL
	if ios == "" {
		ios = r.Companion(model)
		if p.ModelURL == "" {
			ios = fileutil.JoinURL(baseURL, ios)
		}
	}
	if p.ModelURL == "" {
		model = fileutil.JoinURL(baseURL, model)
	}
	if p.ImageURL == "" {
		image = fileutil.JoinURL(baseURL, image)
	}

	p.ModelURL = model
	p.IOSModelURL = ios
	p.ImageURL = image
	p.Extra = maps.Clone(p.Extra)
	return p
}
