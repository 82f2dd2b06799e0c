package subject

// UserAttribute is the name of a user attribute, as referenced by targeting rules and by
// private attribute declarations. Any string that is not a built-in name refers to a custom attribute.
type UserAttribute string

const (
	KeyAttribute          UserAttribute = "key"
	SecondaryKeyAttribute UserAttribute = "secondary"
	IPAttribute           UserAttribute = "ip"
	CountryAttribute      UserAttribute = "country"
	EmailAttribute        UserAttribute = "email"
	NameAttribute         UserAttribute = "name"
	AvatarAttribute       UserAttribute = "avatar"
	FirstNameAttribute    UserAttribute = "firstName"
	LastNameAttribute     UserAttribute = "lastName"
	AnonymousAttribute    UserAttribute = "anonymous"
)

var builtInAttributes = map[UserAttribute]bool{
	KeyAttribute:          true,
	SecondaryKeyAttribute: true,
	IPAttribute:           true,
	CountryAttribute:      true,
	EmailAttribute:        true,
	NameAttribute:         true,
	AvatarAttribute:       true,
	FirstNameAttribute:    true,
	LastNameAttribute:     true,
	AnonymousAttribute:    true,
}

// IsBuiltIn reports whether the name refers to one of the fixed user fields rather than a custom attribute.
// Matching is case-sensitive.
func (a UserAttribute) IsBuiltIn() bool {
	return builtInAttributes[a]
}

func (a UserAttribute) String() string {
	return string(a)
}
