package subject

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFilterUsesPerUserPrivateAttributes(t *testing.T) {
	filter := NewUserFilter(FilterOptions{})
	filtered := filter.Filter(fullUser())

	if filtered.Email != nil {
		t.Errorf("Expected email to be redacted")
	}
	if _, ok := filtered.Custom["plan"]; ok {
		t.Errorf("Expected plan to be redacted")
	}
	if filtered.Name == nil || *filtered.Name != "Ada Lovelace" {
		t.Errorf("Expected name to be kept")
	}
	if !reflect.DeepEqual(filtered.PrivateAttrs, []UserAttribute{EmailAttribute, "plan"}) {
		t.Errorf("Unexpected private attrs %v", filtered.PrivateAttrs)
	}
}

func TestFilterGlobalPrivateAttributes(t *testing.T) {
	filter := NewUserFilter(FilterOptions{PrivateAttributeNames: []UserAttribute{IPAttribute, "seats"}})
	filtered := filter.Filter(fullUser())

	expected := []UserAttribute{EmailAttribute, IPAttribute, "plan", "seats"}
	if !reflect.DeepEqual(filtered.PrivateAttrs, expected) {
		t.Errorf("Expected %v, got %v", expected, filtered.PrivateAttrs)
	}
	if filtered.IP != nil {
		t.Errorf("Expected IP to be redacted")
	}
	if _, ok := filtered.Custom["tags"]; !ok {
		t.Errorf("Expected tags to be kept")
	}
}

func TestFilterAllAttributesPrivate(t *testing.T) {
	filter := NewUserFilter(FilterOptions{AllAttributesPrivate: true})
	bytes, err := json.Marshal(filter.Filter(fullUser()))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	expected := `{"key":"user-key","anonymous":false,"privateAttrs":["avatar","country","email","firstName","ip",` +
		`"lastName","name","plan","seats","secondary","tags"]}`
	if string(bytes) != expected {
		t.Errorf("Expected %s, got %s", expected, string(bytes))
	}
}

func TestFilterNeverRedactsKey(t *testing.T) {
	user := NewUserBuilder("user-key").Anonymous(true).Private(KeyAttribute, AnonymousAttribute).Build()
	filtered := NewUserFilter(FilterOptions{}).Filter(user)
	if filtered.Key == nil || *filtered.Key != "user-key" {
		t.Errorf("Expected key to be kept")
	}
	if filtered.Anonymous == nil || !*filtered.Anonymous {
		t.Errorf("Expected anonymous to be kept")
	}
	if len(filtered.PrivateAttrs) != 0 {
		t.Errorf("Expected nothing to be redacted, got %v", filtered.PrivateAttrs)
	}
}

func TestFilterOnlyListsAttributesThatWereSet(t *testing.T) {
	user := NewUserBuilder("user-key").Private(EmailAttribute, "plan").Build()
	filtered := NewUserFilter(FilterOptions{}).Filter(user)
	if len(filtered.PrivateAttrs) != 0 {
		t.Errorf("Expected no private attrs for unset attributes, got %v", filtered.PrivateAttrs)
	}
	if filtered.Custom != nil {
		t.Errorf("Expected no custom attributes")
	}
}

func TestFilterDoesNotModifyUser(t *testing.T) {
	user := fullUser()
	before, _ := json.Marshal(user)
	filtered := NewUserFilter(FilterOptions{AllAttributesPrivate: true}).Filter(user)
	filtered.Custom = map[string]Value{"plan": String("changed")}
	after, _ := json.Marshal(user)
	if string(before) != string(after) {
		t.Errorf("Expected user to be unchanged by filtering")
	}
}

func TestFilterListsSharedNameOnce(t *testing.T) {
	user := NewUserBuilder("user-key").
		Email("test@example.com").
		Custom("email", String("other@example.com")).
		Private(EmailAttribute).
		Build()
	filtered := NewUserFilter(FilterOptions{}).Filter(user)
	if !reflect.DeepEqual(filtered.PrivateAttrs, []UserAttribute{EmailAttribute}) {
		t.Errorf("Expected email to be listed once, got %v", filtered.PrivateAttrs)
	}
	if filtered.Email != nil || filtered.Custom != nil {
		t.Errorf("Expected both email attributes to be redacted")
	}
}
