// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed config.schema.json
var schemaJSON []byte

var (
	schema     *jsonschema.Schema
	schemaOnce sync.Once
	schemaErr  error
)

// compiled returns the compiled configuration schema; it is compiled
// only once.
func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}
		schema, err = compiler.Compile("config.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("compile config schema: %w", err)
		}
	})
	return schema, schemaErr
}

// validate checks given decoded YAML document against the
// configuration schema.  The document is normalized through JSON first
// since YAML decodes numbers and maps into types the validator doesn't
// know.
func validate(doc any) error {
	s, err := compiled()
	if err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return &ValidationError{Cause: err}
	}
	return nil
}
