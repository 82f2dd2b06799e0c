package subject

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type userJSON struct {
	Key                   *string          `json:"key,omitempty"`
	Secondary             *string          `json:"secondary,omitempty"`
	IP                    *string          `json:"ip,omitempty"`
	Country               *string          `json:"country,omitempty"`
	Email                 *string          `json:"email,omitempty"`
	Name                  *string          `json:"name,omitempty"`
	Avatar                *string          `json:"avatar,omitempty"`
	FirstName             *string          `json:"firstName,omitempty"`
	LastName              *string          `json:"lastName,omitempty"`
	Anonymous             *bool            `json:"anonymous,omitempty"`
	Custom                map[string]Value `json:"custom,omitempty"`
	PrivateAttributeNames []UserAttribute  `json:"privateAttributeNames,omitempty"`
}

// The key may arrive as a string or a number.
type userJSONInput struct {
	userJSON
	Key json.RawMessage `json:"key"`
}

func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON{
		Key:                   optionalStringPtr(u.key),
		Secondary:             optionalStringPtr(u.secondary),
		IP:                    optionalStringPtr(u.ip),
		Country:               optionalStringPtr(u.country),
		Email:                 optionalStringPtr(u.email),
		Name:                  optionalStringPtr(u.name),
		Avatar:                optionalStringPtr(u.avatar),
		FirstName:             optionalStringPtr(u.firstName),
		LastName:              optionalStringPtr(u.lastName),
		PrivateAttributeNames: u.PrivateAttributeNames(),
	}
	if anonymous, ok := u.Anonymous(); ok {
		out.Anonymous = &anonymous
	}
	if len(u.custom) > 0 {
		out.Custom = u.custom
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the receiver with a newly decoded User. Prefer ParseUser.
func (u *User) UnmarshalJSON(data []byte) error {
	parsed, err := ParseUser(data)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUser decodes a User from its JSON representation. Errors match ErrInvalidUserJSON.
func ParseUser(data []byte) (User, error) {
	var in userJSONInput
	if err := json.Unmarshal(data, &in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return User{}, &UserJSONError{Field: typeErr.Field, Err: err}
		}
		return User{}, &UserJSONError{Err: err}
	}

	key, err := parseKey(in.Key)
	if err != nil {
		return User{}, &UserJSONError{Field: string(KeyAttribute), Err: err}
	}

	return NewUser(key, Attributes{
		Secondary:             in.Secondary,
		IP:                    in.IP,
		Country:               in.Country,
		Email:                 in.Email,
		Name:                  in.Name,
		Avatar:                in.Avatar,
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		Anonymous:             in.Anonymous,
		Custom:                in.Custom,
		PrivateAttributeNames: in.PrivateAttributeNames,
	}), nil
}

func parseKey(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var key interface{}
	if err := decoder.Decode(&key); err != nil {
		return nil, err
	}
	switch k := key.(type) {
	case string:
		return k, nil
	case json.Number:
		return k.String(), nil
	}
	return nil, fmt.Errorf("expected string or number, got %T", key)
}
