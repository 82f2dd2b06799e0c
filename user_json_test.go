package subject

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUserMarshalJSON(t *testing.T) {
	bytes, err := json.Marshal(fullUser())
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	expected := `{"key":"user-key","secondary":"second","ip":"1.2.3.4","country":"US","email":"test@example.com",` +
		`"name":"Ada Lovelace","avatar":"https://example.com/ada.png","firstName":"Ada","lastName":"Lovelace",` +
		`"anonymous":false,"custom":{"plan":"gold","seats":12,"tags":["a","b"]},"privateAttributeNames":["email","plan"]}`
	if string(bytes) != expected {
		t.Errorf("Expected %s, got %s", expected, string(bytes))
	}
}

func TestUserMarshalJSONOmitsUnset(t *testing.T) {
	bytes, _ := json.Marshal(NewUser(nil, Attributes{}))
	if string(bytes) != `{}` {
		t.Errorf("Expected empty object, got %s", string(bytes))
	}
	bytes, _ = json.Marshal(NewUser("", Attributes{}))
	if string(bytes) != `{"key":""}` {
		t.Errorf("Expected blank key to be kept, got %s", string(bytes))
	}
}

func TestParseUser(t *testing.T) {
	input := `{"key":"user-key","secondary":"second","ip":"1.2.3.4","country":"US","email":"test@example.com",` +
		`"name":"Ada Lovelace","avatar":"https://example.com/ada.png","firstName":"Ada","lastName":"Lovelace",` +
		`"anonymous":false,"custom":{"plan":"gold","seats":12,"tags":["a","b"]},"privateAttributeNames":["email","plan"]}`
	user, err := ParseUser([]byte(input))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	bytes, _ := json.Marshal(user)
	if string(bytes) != input {
		t.Errorf("Expected %s, got %s", input, string(bytes))
	}
	if value, ok := user.ValueFor("seats"); !ok || value.IntValue() != 12 {
		t.Errorf("Expected seats to decode as a number")
	}
}

func TestParseUserKeyForms(t *testing.T) {
	user, err := ParseUser([]byte(`{"key":42}`))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if key, ok := user.Key(); !ok || key != "42" {
		t.Errorf("Expected numeric key to become \"42\", got %q", key)
	}

	user, _ = ParseUser([]byte(`{"key":null}`))
	if _, ok := user.Key(); ok || user.IsKeyBlank() {
		t.Errorf("Expected null key to be unset")
	}

	user, _ = ParseUser([]byte(`{"email":"a@b.co"}`))
	if _, ok := user.Key(); ok {
		t.Errorf("Expected missing key to be unset")
	}

	user, _ = ParseUser([]byte(`{"key":""}`))
	if !user.IsKeyBlank() {
		t.Errorf("Expected empty key to be blank")
	}
}

func TestParseUserErrors(t *testing.T) {
	tests := []struct {
		input string
		field string
	}{
		{`{"key":true}`, "key"},
		{`{"key":{"id":1}}`, "key"},
		{`{"key":"k","email":5}`, "email"},
		{`{"key":"k","anonymous":"yes"}`, "anonymous"},
		{`{"key":`, ""},
		{`[]`, ""},
	}
	for _, test := range tests {
		_, err := ParseUser([]byte(test.input))
		if err == nil {
			t.Errorf("Expected error for %s", test.input)
			continue
		}
		if !errors.Is(err, ErrInvalidUserJSON) {
			t.Errorf("Expected error for %s to match ErrInvalidUserJSON", test.input)
		}
		var jsonErr *UserJSONError
		if !errors.As(err, &jsonErr) {
			t.Errorf("Expected a *UserJSONError for %s", test.input)
			continue
		}
		if jsonErr.Field != test.field {
			t.Errorf("Expected field %q for %s, got %q", test.field, test.input, jsonErr.Field)
		}
	}
}

func TestUserUnmarshalJSONInStruct(t *testing.T) {
	var event struct {
		Kind string `json:"kind"`
		User User   `json:"user"`
	}
	if err := json.Unmarshal([]byte(`{"kind":"feature","user":{"key":7,"custom":{"plan":"gold"}}}`), &event); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if key, _ := event.User.Key(); key != "7" {
		t.Errorf("Expected key 7, got %s", key)
	}
	if value, _ := event.User.ValueFor("plan"); value.StringValue() != "gold" {
		t.Errorf("Expected plan to be gold")
	}
}

func TestUserJSONErrorMessage(t *testing.T) {
	err := &UserJSONError{Field: "key", Err: errors.New("bad")}
	if err.Error() != "Failed to parse user attribute key: bad" {
		t.Errorf("Unexpected message %s", err.Error())
	}
	err = &UserJSONError{Err: errors.New("bad")}
	if err.Error() != "Failed to parse user: bad" {
		t.Errorf("Unexpected message %s", err.Error())
	}
}
