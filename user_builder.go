package subject

import (
	"github.com/google/uuid"
)

// UserBuilder accumulates attributes for a User. It is not safe for concurrent use;
// the Users it builds are.
type UserBuilder struct {
	key     *string
	attrs   Attributes
	custom  map[string]Value
	private map[UserAttribute]struct{}
}

func NewUserBuilder(key string) *UserBuilder {
	return &UserBuilder{
		key:     &key,
		custom:  make(map[string]Value),
		private: make(map[UserAttribute]struct{}),
	}
}

// NewAnonymousUserBuilder starts an anonymous user with a random key.
func NewAnonymousUserBuilder() *UserBuilder {
	return NewUserBuilder(uuid.NewString()).Anonymous(true)
}

// NewUserBuilderFromUser starts from the attributes of an existing user. The existing user is not affected.
func NewUserBuilderFromUser(u User) *UserBuilder {
	b := &UserBuilder{
		custom:  u.Custom(),
		private: make(map[UserAttribute]struct{}, len(u.privateAttributeNames)),
	}
	if k, ok := u.Key(); ok {
		b.key = &k
	}
	b.attrs.Secondary = optionalStringPtr(u.secondary)
	b.attrs.IP = optionalStringPtr(u.ip)
	b.attrs.Country = optionalStringPtr(u.country)
	b.attrs.Email = optionalStringPtr(u.email)
	b.attrs.Name = optionalStringPtr(u.name)
	b.attrs.Avatar = optionalStringPtr(u.avatar)
	b.attrs.FirstName = optionalStringPtr(u.firstName)
	b.attrs.LastName = optionalStringPtr(u.lastName)
	if anonymous, ok := u.Anonymous(); ok {
		b.attrs.Anonymous = &anonymous
	}
	for name := range u.privateAttributeNames {
		b.private[name] = struct{}{}
	}
	return b
}

func optionalStringPtr(o optionalString) *string {
	if !o.defined {
		return nil
	}
	s := o.value
	return &s
}

func (b *UserBuilder) Key(key string) *UserBuilder {
	b.key = &key
	return b
}

func (b *UserBuilder) Secondary(secondary string) *UserBuilder {
	b.attrs.Secondary = &secondary
	return b
}

func (b *UserBuilder) IP(ip string) *UserBuilder {
	b.attrs.IP = &ip
	return b
}

func (b *UserBuilder) Country(country string) *UserBuilder {
	b.attrs.Country = &country
	return b
}

func (b *UserBuilder) Email(email string) *UserBuilder {
	b.attrs.Email = &email
	return b
}

func (b *UserBuilder) Name(name string) *UserBuilder {
	b.attrs.Name = &name
	return b
}

func (b *UserBuilder) Avatar(avatar string) *UserBuilder {
	b.attrs.Avatar = &avatar
	return b
}

func (b *UserBuilder) FirstName(firstName string) *UserBuilder {
	b.attrs.FirstName = &firstName
	return b
}

func (b *UserBuilder) LastName(lastName string) *UserBuilder {
	b.attrs.LastName = &lastName
	return b
}

func (b *UserBuilder) Anonymous(anonymous bool) *UserBuilder {
	b.attrs.Anonymous = &anonymous
	return b
}

// Custom sets a custom attribute. Setting a null Value still defines the attribute.
func (b *UserBuilder) Custom(name string, value Value) *UserBuilder {
	b.custom[name] = value
	return b
}

// Private marks attributes as private. Names that are never set are allowed.
func (b *UserBuilder) Private(attrs ...UserAttribute) *UserBuilder {
	for _, attr := range attrs {
		b.private[attr] = struct{}{}
	}
	return b
}

func (b *UserBuilder) PrivateCustom(name string, value Value) *UserBuilder {
	return b.Custom(name, value).Private(UserAttribute(name))
}

// Build creates a User from the current state. The builder can keep being used afterwards
// without affecting Users it already built.
func (b *UserBuilder) Build() User {
	attrs := b.attrs
	attrs.Custom = b.custom
	attrs.PrivateAttributeNames = make([]UserAttribute, 0, len(b.private))
	for name := range b.private {
		attrs.PrivateAttributeNames = append(attrs.PrivateAttributeNames, name)
	}
	var key interface{}
	if b.key != nil {
		key = *b.key
	}
	return NewUser(key, attrs)
}
