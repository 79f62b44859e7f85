package mcp

import (
	"encoding/json"
	"fmt"
	"sort"
)

// UnknownField represents an unknown field that was passed but not recognized
type UnknownField struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type ClusterParams struct {
	Surnames  []string       `json:"surnames"`
	Threshold *float64       `json:"threshold,omitempty"` // nil means the configured default
	Format    string         `json:"format,omitempty"`    // json (default) or csv
	Warnings  []UnknownField `json:"-"`
}

type SurnameParams struct {
	Surname  string         `json:"surname"`
	Warnings []UnknownField `json:"-"`
}

type CategoriesParams struct {
	MainID   int            `json:"main_id,omitempty"`
	Warnings []UnknownField `json:"-"`
}

// UnmarshalJSON accepts unknown fields and records them as warnings
func (p *ClusterParams) UnmarshalJSON(data []byte) error {
	type Alias ClusterParams
	warnings, err := collectUnknownFields(data, map[string]struct{}{
		"surnames": {}, "threshold": {}, "format": {},
	})
	if err != nil {
		return err
	}
	var alias Alias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = ClusterParams(alias)
	p.Warnings = warnings
	return nil
}

// UnmarshalJSON accepts unknown fields and records them as warnings. "name"
// is taken as an alias for "surname".
func (p *SurnameParams) UnmarshalJSON(data []byte) error {
	type Alias SurnameParams
	warnings, err := collectUnknownFields(data, map[string]struct{}{
		"surname": {}, "name": {},
	})
	if err != nil {
		return err
	}
	var alias Alias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	if alias.Surname == "" {
		var legacy struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(data, &legacy)
		alias.Surname = legacy.Name
	}
	*p = SurnameParams(alias)
	p.Warnings = warnings
	return nil
}

// UnmarshalJSON accepts unknown fields and records them as warnings
func (p *CategoriesParams) UnmarshalJSON(data []byte) error {
	type Alias CategoriesParams
	warnings, err := collectUnknownFields(data, map[string]struct{}{"main_id": {}})
	if err != nil {
		return err
	}
	var alias Alias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = CategoriesParams(alias)
	p.Warnings = warnings
	return nil
}

func collectUnknownFields(data []byte, known map[string]struct{}) ([]UnknownField, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var warnings []UnknownField
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(value, &decoded); err != nil {
			decoded = string(value)
		}
		warnings = append(warnings, UnknownField{Name: key, Value: decoded})
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Name < warnings[j].Name })
	return warnings, nil
}

func warningMessages(fields []UnknownField) []string {
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fmt.Sprintf("unknown parameter %q ignored", f.Name)
	}
	return out
}

// decodeParams unmarshals tool arguments; empty arguments leave p zero.
func decodeParams(args json.RawMessage, p interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, p)
}
