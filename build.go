//go:build ignore

// Builds every program under cmd/ into ./bin. Run with `go run build.go`.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

func buildCommands(root string, folder string) {
	dirPath := filepath.Join(root, folder)

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s dir: %v\n", folder, err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		cmdDir := filepath.Join(dirPath, name)

		hasGo := false
		sub, _ := os.ReadDir(cmdDir)
		for _, f := range sub {
			if f.Type().IsRegular() && filepath.Ext(f.Name()) == ".go" {
				hasGo = true
				break
			}
		}
		if !hasGo {
			fmt.Printf("Skipping %s/%s (no .go files)\n", folder, name)
			continue
		}

		outPath := filepath.Join(root, "bin", name)
		fmt.Printf("Building %s -> %s\n", name, outPath)

		cmd := exec.Command("go", "build", "-o", outPath, "./"+filepath.ToSlash(filepath.Join(folder, name)))
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Env = os.Environ()

		if err := cmd.Run(); err != nil {
			fmt.Printf("Build failed for %s : %v\n", name, err)
		} else {
			fmt.Printf("Built %s\n", outPath)
		}
	}
}

func main() {
	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Couldn't get working dir:", err)
		os.Exit(1)
	}

	// hyprwall finds hyprlock-sync next to itself, so both land in bin/.
	buildCommands(root, "cmd")
}
