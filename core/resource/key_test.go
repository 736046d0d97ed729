package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{name: "empty", in: "", want: nil},
		{name: "slashes only", in: "//", want: nil},
		{name: "single", in: "E1", want: Key{"E1"}},
		{name: "composite", in: "STU1/FEE2", want: Key{"STU1", "FEE2"}},
		{name: "surrounding slashes", in: "/STU1/FEE2/", want: Key{"STU1", "FEE2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKey(tt.in))
		})
	}
}

func TestKey_Path(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "single", key: Key{"E1"}, want: "E1"},
		{name: "composite keeps order", key: Key{"STU1", "FEE2"}, want: "STU1/FEE2"},
		{name: "escaped", key: Key{"a b", "c/d"}, want: "a%20b/c%2Fd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_IsZero(t *testing.T) {
	assert.True(t, Key(nil).IsZero())
	assert.True(t, Key{""}.IsZero())
	assert.True(t, Key{"", ""}.IsZero())
	assert.False(t, Key{"", "FEE2"}.IsZero())
}

func TestKey_Equal(t *testing.T) {
	assert.True(t, Key{"a", "b"}.Equal(Key{"a", "b"}))
	assert.False(t, Key{"a", "b"}.Equal(Key{"b", "a"}))
	assert.False(t, Key{"a"}.Equal(Key{"a", "b"}))
}

func TestDecodeList(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}
	tests := []struct {
		name    string
		body    string
		listKey string
		want    []item
		wantErr bool
	}{
		{name: "under key", body: `{"configs":[{"id":"E1"},{"id":"E2"}]}`, listKey: "configs", want: []item{{"E1"}, {"E2"}}},
		{name: "absent key", body: `{"other":[{"id":"E1"}]}`, listKey: "configs", want: []item{}},
		{name: "null key", body: `{"configs":null}`, listKey: "configs", want: []item{}},
		{name: "bare array", body: `[{"id":"E1"}]`, want: []item{{"E1"}}},
		{name: "bare null", body: `null`, want: []item{}},
		{name: "not an object", body: `[1]`, listKey: "configs", wantErr: true},
		{name: "not an array", body: `{"configs":{"id":"E1"}}`, listKey: "configs", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[item]([]byte(tt.body), tt.listKey)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
