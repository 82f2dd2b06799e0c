package subject

import (
	"strings"
	"sync"

	"github.com/ua-parser/uap-go/uaparser"
)

type uaParser struct {
	parser  *uaparser.Parser
	wg      sync.WaitGroup
	options UAParserOptions
	mu      sync.RWMutex
}

func newUAParser(options UAParserOptions) *uaParser {
	u := &uaParser{
		options: options,
	}
	u.delayedSetup()
	if !options.LazyLoad {
		u.ensureLoaded()
	}
	return u
}

func (u *uaParser) isReady() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.parser != nil
}

func (u *uaParser) delayedSetup() {
	if u.options.Disabled {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		parser := uaparser.NewFromSaved()
		u.mu.Lock()
		u.parser = parser
		u.mu.Unlock()
	}()
}

func (u *uaParser) ensureLoaded() {
	if u.options.Disabled {
		return
	}
	u.wg.Wait()
}

func (u *uaParser) parse(ua string) *uaparser.Client {
	if u.options.Disabled {
		return nil
	}
	if u.options.EnsureLoaded {
		u.ensureLoaded()
	}
	if !u.isReady() {
		global.Logger().Debug("User agent parser is still loading, skipping")
		return nil
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.parser.Parse(ua)
}

func joinVersion(parts ...string) string {
	return strings.Join(removeEmptyStrings(parts), ".")
}

func removeEmptyStrings(s []string) []string {
	var r []string
	for _, str := range s {
		if str != "" {
			r = append(r, str)
		}
	}
	return r
}
