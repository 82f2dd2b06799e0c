package subject

import "fmt"

const (
	UserAgentAttribute      UserAttribute = "userAgent"
	BrowserNameAttribute    UserAttribute = "browserName"
	BrowserVersionAttribute UserAttribute = "browserVersion"
	OSNameAttribute         UserAttribute = "osName"
	OSVersionAttribute      UserAttribute = "osVersion"
)

// Enricher derives attributes the caller did not supply: the country from the IP address,
// and browser and OS details from a "userAgent" custom attribute.
// It is safe for concurrent use.
type Enricher struct {
	countryLookup *countryLookup
	uaParser      *uaParser
}

// NewEnricher starts loading the lookup tables. Unless LazyLoad is set it waits for them.
func NewEnricher(options EnrichmentOptions) *Enricher {
	return &Enricher{
		countryLookup: newCountryLookup(options.IPCountryOptions),
		uaParser:      newUAParser(options.UAParserOptions),
	}
}

// Enrich returns a new User with derived attributes added. Attributes that are already set are never
// overwritten, and the given User is left unchanged. Attributes derived from a private attribute are
// marked private as well.
func (e *Enricher) Enrich(u User) (enriched User) {
	enriched = u
	defer func() {
		if r := recover(); r != nil {
			global.Logger().LogError(fmt.Sprintf("panic while enriching user: %v", r))
			enriched = u
		}
	}()

	builder := NewUserBuilderFromUser(u)
	changed := false

	if _, hasCountry := u.Country(); !hasCountry {
		if ip, hasIP := u.IP(); hasIP && ip != "" {
			if country, ok := e.countryLookup.lookupIp(ip); ok {
				builder.Country(country)
				if u.IsPrivate(IPAttribute) {
					builder.Private(CountryAttribute)
				}
				changed = true
			}
		}
	}

	if ua, ok := u.GetCustom(string(UserAgentAttribute)); ok && ua.Type() == StringType {
		if client := e.uaParser.parse(ua.StringValue()); client != nil {
			derived := map[UserAttribute]string{}
			if client.UserAgent != nil {
				derived[BrowserNameAttribute] = client.UserAgent.Family
				derived[BrowserVersionAttribute] = joinVersion(client.UserAgent.Major, client.UserAgent.Minor, client.UserAgent.Patch)
			}
			if client.Os != nil {
				derived[OSNameAttribute] = client.Os.Family
				derived[OSVersionAttribute] = joinVersion(client.Os.Major, client.Os.Minor, client.Os.Patch, client.Os.PatchMinor)
			}
			for attr, value := range derived {
				if _, exists := u.GetCustom(string(attr)); exists || value == "" {
					continue
				}
				builder.Custom(string(attr), String(value))
				if u.IsPrivate(UserAgentAttribute) {
					builder.Private(attr)
				}
				changed = true
			}
		}
	}

	if !changed {
		return u
	}
	return builder.Build()
}
