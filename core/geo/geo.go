package geo

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ProviderRandom is the placeholder provider; it never resolves addresses.
const ProviderRandom = "random"

// PlaceholderISP is the ISP reported by the placeholder resolver.
const PlaceholderISP = "Dummy ISP Inc."

// ErrUnknownProvider is returned for an unsupported provider name.
var ErrUnknownProvider = errors.New("unknown geo provider")

// Config selects the resolver.
type Config struct {
	// Provider names the resolver implementation (random).
	Provider string `mapstructure:"provider" default:"random"`
}

// Info is the network and location data attached to a viewer.
type Info struct {
	ISP         string `json:"isp"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// Resolver maps an IP address to Info.
type Resolver interface {
	Lookup(ip string) Info
}

// Country is a code/name pair.
type Country struct {
	Code string
	Name string
}

// PlaceholderCountries are the countries the placeholder resolver picks from.
var PlaceholderCountries = []Country{
	{Code: "us", Name: "United States"},
	{Code: "gb", Name: "United Kingdom"},
	{Code: "de", Name: "Germany"},
	{Code: "fr", Name: "France"},
	{Code: "jp", Name: "Japan"},
	{Code: "in", Name: "India"},
}

// RandomResolver is a placeholder: it ignores the address and picks a
// country uniformly at random.
type RandomResolver struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomResolver creates a placeholder resolver drawing from src.
func NewRandomResolver(src rand.Source) *RandomResolver {
	return &RandomResolver{rnd: rand.New(src)}
}

// Lookup returns placeholder data; ip is not consulted.
func (r *RandomResolver) Lookup(_ string) Info {
	r.mu.Lock()
	c := PlaceholderCountries[r.rnd.Intn(len(PlaceholderCountries))]
	r.mu.Unlock()

	return Info{
		ISP:         PlaceholderISP,
		CountryCode: c.Code,
		CountryName: c.Name,
	}
}

// New builds the resolver named by cfg.Provider.
func New(cfg Config) (Resolver, error) {
	switch cfg.Provider {
	case "", ProviderRandom:
		return NewRandomResolver(rand.NewSource(time.Now().UnixNano())), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
