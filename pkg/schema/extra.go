package schema

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Open records keep undeclared members in an Extra map tagged `json:"-"`.
// They implement json.Unmarshaler and json.Marshaler through a method-less
// alias type:
//
//	func (p *Position) UnmarshalJSON(data []byte) error {
//		type plain Position
//		extra, err := schema.UnmarshalOpen(data, (*plain)(p))
//		p.Extra = extra
//		return err
//	}

var declaredMembers sync.Map // reflect.Type -> map[string]reflect.Type

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// UnmarshalOpen decodes data into known and returns the members known does
// not declare, or nil when there are none. Member names match exactly: a
// differently cased name is an undeclared member.
func UnmarshalOpen(data []byte, known interface{}) (map[string]interface{}, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	declared := membersOf(reflect.TypeOf(known))
	var extra map[string]interface{}
	for name, raw := range members {
		t, ok := declared[name]
		if !ok {
			var value interface{}
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, err
			}
			if extra == nil {
				extra = map[string]interface{}{}
			}
			extra[name] = value
			delete(members, name)
			continue
		}
		trimmed, err := retainDeclaredJSON(raw, t)
		if err != nil {
			return nil, err
		}
		members[name] = trimmed
	}
	body, err := json.Marshal(members)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, known); err != nil {
		return nil, err
	}
	return extra, nil
}

// MarshalOpen encodes known and merges extra into the resulting object.
// Declared members win over extras of the same name.
func MarshalOpen(known interface{}, extra map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return body, err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &merged); err != nil {
		return nil, err
	}
	for name, value := range extra {
		if _, taken := merged[name]; taken {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[name] = raw
	}
	return json.Marshal(merged)
}

// retainDeclared deletes, in place, every object member that the matching
// struct type of t does not declare under its exact name. encoding/json
// would otherwise bind a differently cased member to a declared field. Types
// with their own UnmarshalJSON filter their members themselves.
func retainDeclared(value interface{}, t reflect.Type) {
	t = structural(t)
	if t == nil {
		return
	}
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return
		}
		declared := membersOf(t)
		for name, member := range obj {
			ft, ok := declared[name]
			if !ok {
				delete(obj, name)
				continue
			}
			retainDeclared(member, ft)
		}
	case reflect.Slice, reflect.Array:
		if list, ok := value.([]interface{}); ok {
			for _, item := range list {
				retainDeclared(item, t.Elem())
			}
		}
	case reflect.Map:
		if obj, ok := value.(map[string]interface{}); ok && t.Key().Kind() == reflect.String {
			for _, member := range obj {
				retainDeclared(member, t.Elem())
			}
		}
	}
}

// retainDeclaredJSON applies retainDeclared to an encoded member.
func retainDeclaredJSON(raw json.RawMessage, t reflect.Type) (json.RawMessage, error) {
	if !needsFiltering(t) {
		return raw, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	retainDeclared(value, t)
	return json.Marshal(value)
}

// structural dereferences t and returns nil for types that decode themselves
// or hold no struct members.
func structural(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return t
	}
	return nil
}

func needsFiltering(t reflect.Type) bool {
	t = structural(t)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Struct {
		return true
	}
	return needsFiltering(t.Elem())
}

// membersOf returns the JSON member names a struct type declares, with their
// types, following embedded structs.
func membersOf(t reflect.Type) map[string]reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := declaredMembers.Load(t); ok {
		return cached.(map[string]reflect.Type)
	}
	members := map[string]reflect.Type{}
	collectMembers(t, members)
	declaredMembers.Store(t, members)
	return members
}

func collectMembers(t reflect.Type, members map[string]reflect.Type) {
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			collectMembers(ft, members)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		members[name] = f.Type
	}
}
