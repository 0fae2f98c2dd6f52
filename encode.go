package bedazzle

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal returns the JSON encoding of the data of s, with sorted keys.
// Functions are left out.
func Marshal(s State) ([]byte, error) {
	return json.Marshal(Data(s))
}

// MarshalIndent is like Marshal but indents nested values with indent, which may only hold spaces.
func MarshalIndent(s State, indent string) ([]byte, error) {
	if strings.Trim(indent, " ") != "" {
		return nil, fmt.Errorf("bedazzle: indent can only be spaces, got %q", indent)
	}
	return json.MarshalIndent(Data(s), "", indent)
}

// ToStruct converts the data of s into a protobuf Struct.
func ToStruct(s State) (*structpb.Struct, error) {
	data, err := Marshal(s)
	if err != nil {
		return nil, err
	}
	st := &structpb.Struct{}
	if err := protojson.Unmarshal(data, st); err != nil {
		return nil, err
	}
	return st, nil
}
