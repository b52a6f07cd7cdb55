package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new folio project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(w io.Writer, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	name := filepath.Base(dir)
	data := scaffold.Data{
		ProjectName: name,
		SiteName:    toTitle(name),
	}

	fmt.Fprintf(w, "Creating new folio project: %s\n\n", name)

	err := scaffold.Render(dir, data, func(path string) {
		fmt.Fprintf(w, "  created %s\n", path)
	})
	if err != nil {
		return err
	}

	if err := writeStarterContent(w, filepath.Join(dir, "content", content.FileName), data); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done! Next steps:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  cd %s\n", dir)
	fmt.Fprintln(w, "  folio serve --watch")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Edit content/%s and content/%s, then 'folio build' to export.\n", content.FileName, content.AboutFile)
	return nil
}

// writeStarterContent writes the built-in content as content.yaml. The
// about text lives in about.md, so it is left out here.
func writeStarterContent(w io.Writer, path string, data scaffold.Data) error {
	c := content.Default()
	c.Profile.Name = data.SiteName
	c.About.Body = ""
	c.About.Services = nil

	b, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(w, "  created %s\n", path)
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "jane-doe" -> "Jane Doe"
func toTitle(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}
