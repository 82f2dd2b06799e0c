package subject

import "sort"

type FilterOptions struct {
	AllAttributesPrivate  bool            // Redact every attribute that can be redacted
	PrivateAttributeNames []UserAttribute // Redact these attributes for every user
}

// FilteredUser is the export form of a User, with private attributes removed and listed in PrivateAttrs.
type FilteredUser struct {
	Key          *string          `json:"key,omitempty"`
	Secondary    *string          `json:"secondary,omitempty"`
	IP           *string          `json:"ip,omitempty"`
	Country      *string          `json:"country,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Avatar       *string          `json:"avatar,omitempty"`
	FirstName    *string          `json:"firstName,omitempty"`
	LastName     *string          `json:"lastName,omitempty"`
	Anonymous    *bool            `json:"anonymous,omitempty"`
	Custom       map[string]Value `json:"custom,omitempty"`
	PrivateAttrs []UserAttribute  `json:"privateAttrs,omitempty"`
}

// UserFilter strips private attributes from users before they leave the process, e.g. in analytics events.
// The key and the anonymous flag are always kept.
type UserFilter struct {
	allAttributesPrivate bool
	privateAttributes    map[UserAttribute]struct{}
}

func NewUserFilter(options FilterOptions) *UserFilter {
	f := &UserFilter{
		allAttributesPrivate: options.AllAttributesPrivate,
		privateAttributes:    make(map[UserAttribute]struct{}, len(options.PrivateAttributeNames)),
	}
	for _, attr := range options.PrivateAttributeNames {
		f.privateAttributes[attr] = struct{}{}
	}
	return f
}

func (f *UserFilter) isPrivate(u User, attr UserAttribute) bool {
	if f.allAttributesPrivate {
		return true
	}
	if _, ok := f.privateAttributes[attr]; ok {
		return true
	}
	return u.IsPrivate(attr)
}

func (f *UserFilter) Filter(u User) FilteredUser {
	out := FilteredUser{
		Key: optionalStringPtr(u.key),
	}
	if anonymous, ok := u.Anonymous(); ok {
		out.Anonymous = &anonymous
	}

	// A custom attribute can share its name with a built-in one
	redacted := make(map[UserAttribute]struct{})
	keep := func(attr UserAttribute, value optionalString) *string {
		if !value.defined {
			return nil
		}
		if f.isPrivate(u, attr) {
			redacted[attr] = struct{}{}
			return nil
		}
		return optionalStringPtr(value)
	}
	out.Secondary = keep(SecondaryKeyAttribute, u.secondary)
	out.IP = keep(IPAttribute, u.ip)
	out.Country = keep(CountryAttribute, u.country)
	out.Email = keep(EmailAttribute, u.email)
	out.Name = keep(NameAttribute, u.name)
	out.Avatar = keep(AvatarAttribute, u.avatar)
	out.FirstName = keep(FirstNameAttribute, u.firstName)
	out.LastName = keep(LastNameAttribute, u.lastName)

	for name, value := range u.custom {
		if f.isPrivate(u, UserAttribute(name)) {
			redacted[UserAttribute(name)] = struct{}{}
			continue
		}
		if out.Custom == nil {
			out.Custom = make(map[string]Value)
		}
		out.Custom[name] = value
	}

	if len(redacted) > 0 {
		out.PrivateAttrs = make([]UserAttribute, 0, len(redacted))
		for attr := range redacted {
			out.PrivateAttrs = append(out.PrivateAttrs, attr)
		}
		sort.Slice(out.PrivateAttrs, func(i, j int) bool { return out.PrivateAttrs[i] < out.PrivateAttrs[j] })
	}
	return out
}
