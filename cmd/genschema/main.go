// Command genschema writes JSON Schemas for monosync's configuration files.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/util"
)

type schemaTarget struct {
	file        string
	value       any
	title       string
	description string
}

var targets = []schemaTarget{
	{
		file:        "monosyncrc.schema.json",
		value:       &config.MonosyncConfig{},
		title:       "Monosync Project Settings",
		description: "Configuration schema for " + util.RCFilename,
	},
	{
		file:        "package-configs.schema.json",
		value:       &config.SchemaPackageConfigs{},
		title:       "Monosync Package Configs",
		description: "Configuration schema for " + util.ConfigsFilename,
	},
}

func main() {
	r := jsonschema.Reflector{
		FieldNameTag:               "json",
		RequiredFromJSONSchemaTags: true,
	}

	for _, target := range targets {
		schema := r.Reflect(target.value)
		schema.Title = target.title
		schema.Description = target.description
		schema.ID = ""

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(os.Args) > 1 {
			path := filepath.Join(os.Args[1], target.file)
			if err := os.WriteFile(path, data, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println(string(data))
		}
	}
}
