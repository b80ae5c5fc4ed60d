package patrimoine

import (
	"strings"

	"golang.org/x/text/cases"
)

// Asset is the identity of one holding: a (name, platform) pair.
//
// The platform may be empty, meaning "no platform". For carry-forward
// purposes the empty platform is a distinct bucket of its own, shared by
// every asset recorded without a platform.
//
// Category is a weak reference to an allocation category; it is a lookup
// label, not ownership, and may be empty.
type Asset struct {
	Name     string `json:"name"`
	Platform string `json:"platform,omitempty"`
	Category string `json:"category,omitempty"`
}

var fold = cases.Fold()

// normalizeID canonicalizes an identity component: leading and trailing
// whitespace is trimmed, internal whitespace runs collapse to a single
// space, and the result is Unicode case-folded. The same rule applies to
// names, platforms and categories, here and in the import layer.
func normalizeID(s string) string {
	return fold.String(strings.Join(strings.Fields(s), " "))
}

// Key returns the normalized identity of the asset, suitable for map keys
// and equality checks.
func (a Asset) Key() AssetKey {
	return AssetKey{Name: normalizeID(a.Name), Platform: a.PlatformKey()}
}

// PlatformKey returns the normalized platform bucket of the asset. The
// empty string is a valid, distinct key.
func (a Asset) PlatformKey() string { return normalizeID(a.Platform) }

// CategoryKey returns the normalized category label of the asset.
func (a Asset) CategoryKey() string { return normalizeID(a.Category) }

// Same reports whether two assets are the same holding under identity
// normalization. Category takes no part in identity.
func (a Asset) Same(b Asset) bool { return a.Key() == b.Key() }

func (a Asset) String() string {
	if a.Platform == "" {
		return a.Name
	}
	return a.Name + " @ " + a.Platform
}

// AssetKey is the normalized (name, platform) identity of an asset.
type AssetKey struct {
	Name     string
	Platform string
}
