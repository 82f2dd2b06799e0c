package subject

import (
	"sync"

	countrylookup "github.com/statsig-io/ip3country-go"
)

// The lookup table is large, so it is loaded in the background.
type countryLookup struct {
	lookup  *countrylookup.CountryLookup
	wg      sync.WaitGroup
	options IPCountryOptions
	mu      sync.RWMutex
}

func newCountryLookup(options IPCountryOptions) *countryLookup {
	c := &countryLookup{
		options: options,
	}
	c.delayedSetup()
	if !options.LazyLoad {
		c.ensureLoaded()
	}
	return c
}

func (c *countryLookup) isReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup != nil
}

func (c *countryLookup) delayedSetup() {
	if c.options.Disabled {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		lookup := countrylookup.New()
		c.mu.Lock()
		c.lookup = lookup
		c.mu.Unlock()
	}()
}

func (c *countryLookup) ensureLoaded() {
	if c.options.Disabled {
		return
	}
	c.wg.Wait()
}

func (c *countryLookup) lookupIp(ip string) (string, bool) {
	if c.options.Disabled {
		return "", false
	}
	if c.options.EnsureLoaded {
		c.ensureLoaded()
	}
	if !c.isReady() {
		global.Logger().Debug("IP country lookup is still loading, skipping")
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup.LookupIp(ip)
}
