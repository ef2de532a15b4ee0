package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// LinkKind discriminates the variants of LinkSpec
type LinkKind int

const (
	// LinkSimple is the plain string form: "name" = "target"
	LinkSimple LinkKind = iota
)

// String returns the TOML-facing name of the kind
func (k LinkKind) String() string {
	switch k {
	case LinkSimple:
		return "simple"
	default:
		return "unknown"
	}
}

// LinkSpec describes how one entry of the [files] table should be synced.
// Only the simple string form exists; other TOML shapes are rejected so
// richer variants can be added later without changing the meaning of
// existing files.
type LinkSpec struct {
	Kind LinkKind
	// Target is the destination path, relative to the destination directory
	Target string
}

// SimpleLink builds the string form of a link specification
func SimpleLink(target string) LinkSpec {
	return LinkSpec{Kind: LinkSimple, Target: target}
}

var linkSpecType = reflect.TypeOf(LinkSpec{})

// linkSpecHookFunc decodes raw [files] values into LinkSpec
func linkSpecHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != linkSpecType {
			return data, nil
		}
		switch v := data.(type) {
		case LinkSpec:
			return v, nil
		case string:
			if v == "" {
				return nil, fmt.Errorf("empty link specification")
			}
			return SimpleLink(v), nil
		default:
			return nil, fmt.Errorf("unsupported link specification of type %s", f)
		}
	}
}
