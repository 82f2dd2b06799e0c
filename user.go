package subject

import (
	"fmt"
	"sort"
	"strconv"
)

// User holds the attributes of the user (or device, or account) that feature flags are evaluated for.
//
// A User is immutable once created. Accessors hand out copies, so a User can be passed to any number of
// goroutines without locking; to change an attribute, build a new User with NewUserBuilderFromUser.
//
// NOTE: a key is expected for every user. An unset key and an empty key are distinct states, see IsKeyBlank.
type User struct {
	key                   optionalString
	secondary             optionalString
	ip                    optionalString
	country               optionalString
	email                 optionalString
	name                  optionalString
	avatar                optionalString
	firstName             optionalString
	lastName              optionalString
	anonymous             optionalBool
	custom                map[string]Value
	privateAttributeNames map[UserAttribute]struct{}
}

// Attributes are the optional fields accepted by NewUser. A nil pointer leaves the attribute unset.
type Attributes struct {
	Secondary             *string // Only used for percentage rollout bucketing
	IP                    *string
	Country               *string // ISO 3166-1 alpha-2, e.g. "US"; not validated
	Email                 *string
	Name                  *string // Full name
	Avatar                *string // URL of an avatar image
	FirstName             *string
	LastName              *string
	Anonymous             *bool
	Custom                map[string]Value // Copied; nil is the same as empty
	PrivateAttributeNames []UserAttribute  // Attributes to redact on export; copied
}

type optionalString struct {
	value   string
	defined bool
}

type optionalBool struct {
	value   bool
	defined bool
}

func newOptionalString(s *string) optionalString {
	if s == nil {
		return optionalString{}
	}
	return optionalString{value: *s, defined: true}
}

func newOptionalBool(b *bool) optionalBool {
	if b == nil {
		return optionalBool{}
	}
	return optionalBool{value: *b, defined: true}
}

func (o optionalString) get() (string, bool) {
	return o.value, o.defined
}

func (o optionalString) asValue() (Value, bool) {
	if !o.defined {
		return Null(), false
	}
	return String(o.value), true
}

// NewUser creates a User. A non-nil key is converted to a string, so numeric identifiers are accepted;
// a nil key leaves the key unset rather than turning it into a string.
func NewUser(key interface{}, attrs Attributes) User {
	u := User{
		secondary:             newOptionalString(attrs.Secondary),
		ip:                    newOptionalString(attrs.IP),
		country:               newOptionalString(attrs.Country),
		email:                 newOptionalString(attrs.Email),
		name:                  newOptionalString(attrs.Name),
		avatar:                newOptionalString(attrs.Avatar),
		firstName:             newOptionalString(attrs.FirstName),
		lastName:              newOptionalString(attrs.LastName),
		anonymous:             newOptionalBool(attrs.Anonymous),
		custom:                make(map[string]Value, len(attrs.Custom)),
		privateAttributeNames: make(map[UserAttribute]struct{}, len(attrs.PrivateAttributeNames)),
	}
	if k, ok := keyToString(key); ok {
		u.key = optionalString{value: k, defined: true}
	}
	for name, value := range attrs.Custom {
		u.custom[name] = value
	}
	for _, attr := range attrs.PrivateAttributeNames {
		u.privateAttributeNames[attr] = struct{}{}
	}
	return u
}

func keyToString(key interface{}) (string, bool) {
	switch k := key.(type) {
	case nil:
		return "", false
	case string:
		return k, true
	case *string:
		if k == nil {
			return "", false
		}
		return *k, true
	case int:
		return strconv.Itoa(k), true
	case int32:
		return strconv.FormatInt(int64(k), 10), true
	case int64:
		return strconv.FormatInt(k, 10), true
	case uint:
		return strconv.FormatUint(uint64(k), 10), true
	case uint32:
		return strconv.FormatUint(uint64(k), 10), true
	case uint64:
		return strconv.FormatUint(k, 10), true
	case float32:
		return strconv.FormatFloat(float64(k), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(k), true
	case fmt.Stringer:
		return k.String(), true
	}
	global.Logger().Debug(fmt.Sprintf("user key of type %T converted with fmt.Sprint", key))
	return fmt.Sprint(key), true
}

func (u User) Key() (string, bool) {
	return u.key.get()
}

// Secondary is only meant for rollout bucketing; ValueFor never returns it.
func (u User) Secondary() (string, bool) {
	return u.secondary.get()
}

func (u User) IP() (string, bool) {
	return u.ip.get()
}

func (u User) Country() (string, bool) {
	return u.country.get()
}

func (u User) Email() (string, bool) {
	return u.email.get()
}

func (u User) Name() (string, bool) {
	return u.name.get()
}

func (u User) Avatar() (string, bool) {
	return u.avatar.get()
}

func (u User) FirstName() (string, bool) {
	return u.firstName.get()
}

func (u User) LastName() (string, bool) {
	return u.lastName.get()
}

func (u User) Anonymous() (bool, bool) {
	return u.anonymous.value, u.anonymous.defined
}

// Custom returns a copy of the custom attributes. It is never nil.
func (u User) Custom() map[string]Value {
	custom := make(map[string]Value, len(u.custom))
	for name, value := range u.custom {
		custom[name] = value
	}
	return custom
}

func (u User) GetCustom(name string) (Value, bool) {
	value, ok := u.custom[name]
	return value, ok
}

// CustomAttributeNames returns the custom attribute names in sorted order.
func (u User) CustomAttributeNames() []string {
	names := make([]string, 0, len(u.custom))
	for name := range u.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrivateAttributeNames returns a sorted copy of the attribute names this user marked as private.
// The User does not redact anything itself; see UserFilter.
func (u User) PrivateAttributeNames() []UserAttribute {
	names := make([]UserAttribute, 0, len(u.privateAttributeNames))
	for name := range u.privateAttributeNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (u User) IsPrivate(attr UserAttribute) bool {
	_, ok := u.privateAttributeNames[attr]
	return ok
}

// IsKeyBlank reports whether the key was set to the empty string. A key that was never set is not blank.
func (u User) IsKeyBlank() bool {
	return u.key.defined && u.key.value == ""
}

// ValueFor returns the value of an attribute for rule evaluation, or false if the user has no such value.
//
// Built-in names are matched exactly; any other name is looked up in the custom attributes.
// The secondary key is never returned, it only takes part in bucketing.
func (u User) ValueFor(attr UserAttribute) (Value, bool) {
	switch attr {
	case KeyAttribute:
		return u.key.asValue()
	case SecondaryKeyAttribute:
		return Null(), false
	case IPAttribute:
		return u.ip.asValue()
	case CountryAttribute:
		return u.country.asValue()
	case EmailAttribute:
		return u.email.asValue()
	case NameAttribute:
		return u.name.asValue()
	case AvatarAttribute:
		return u.avatar.asValue()
	case FirstNameAttribute:
		return u.firstName.asValue()
	case LastNameAttribute:
		return u.lastName.asValue()
	case AnonymousAttribute:
		if !u.anonymous.defined {
			return Null(), false
		}
		return Bool(u.anonymous.value), true
	default:
		value, ok := u.custom[string(attr)]
		if !ok {
			return Null(), false
		}
		return value, true
	}
}
