package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/discover"
	"github.com/bolasblack/monosync/internal/merge"
	"github.com/bolasblack/monosync/internal/util"
)

// generateReference writes docs/reference.md from the lookup tables the
// commands actually use, so the page cannot drift from the code.
func generateReference() {
	dir := "docs"
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	path := filepath.Join(dir, "reference.md")
	if err := os.WriteFile(path, []byte(renderReference()), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Generated reference in %s\n", path)
}

func renderReference() string {
	var b strings.Builder
	b.WriteString("# monosync reference\n")

	for _, kind := range []config.Kind{config.KindTemplate, config.KindConfigs} {
		fmt.Fprintf(&b, "\n## %s lookup\n\n", kind.Filename())
		fmt.Fprintf(&b, "1. the `--%s` flag\n", kind)
		fmt.Fprintf(&b, "2. the path set in `%s` or `%s`\n", util.RCFilename, util.RCTomlFilename)
		b.WriteString("3. `<--config-dir>/" + kind.Filename() + "`\n")
		for i, candidate := range config.SearchPaths(kind, "", "") {
			fmt.Fprintf(&b, "%d. `%s`\n", i+4, filepath.ToSlash(candidate))
		}
	}

	b.WriteString("\n## Package discovery\n\n")
	fmt.Fprintf(&b, "Workspace members come from `%s` or the root `workspaces` field.\n", util.WorkspaceFilename)
	b.WriteString("Without either, these directories are scanned:\n\n")
	writeList(&b, discover.ScanDirs)

	b.WriteString("\n## Field order\n\n")
	b.WriteString("Manifests are written with these fields first; any other field follows in its original order.\n\n")
	writeList(&b, merge.CanonicalOrder)

	b.WriteString("\n## Template fields used by `monosync sync`\n\n")
	b.WriteString("Copied only when a package does not declare them.\n\n")
	writeList(&b, merge.CommonFields)
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- `%s`\n", item)
	}
}
