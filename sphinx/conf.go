package sphinx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RenderConfPy renders the config to generator-native Python source.
//
// buildTime becomes html_context.build_time, recomputed on every render to
// defeat client-side caching of static assets. fingerprints, when non-nil,
// maps static asset paths to content-hash tokens and is emitted alongside
// build_time; keys are rendered in sorted order so output is deterministic
// for a given input.
func RenderConfPy(cfg *Config, buildTime time.Time, fingerprints map[string]string) string {
	var b strings.Builder

	b.WriteString("# Configuration file for the Sphinx documentation builder.\n")
	b.WriteString("#\n")
	b.WriteString("# Generated by doccheck; edit docs.yaml and re-run\n")
	b.WriteString("# 'doccheck conf render' instead of editing this file.\n\n")

	b.WriteString("project = " + pyStr(cfg.Project) + "\n")
	b.WriteString("copyright = " + pyStr(cfg.Copyright) + "\n")
	b.WriteString("author = " + pyStr(cfg.Author) + "\n")
	b.WriteString("release = " + pyStr(cfg.Release) + "\n\n")

	writeList(&b, "extensions", cfg.Extensions)
	writeList(&b, "templates_path", cfg.TemplatesPath)
	writeList(&b, "exclude_patterns", cfg.ExcludePatterns)

	b.WriteString("html_theme = " + pyStr(cfg.HTMLTheme) + "\n")
	if cfg.HTMLTitle != "" {
		b.WriteString("html_title = " + pyStr(cfg.HTMLTitle) + "\n")
	}
	writeList(&b, "html_static_path", cfg.HTMLStaticPath)

	b.WriteString("html_theme_options = {\n")
	fmt.Fprintf(&b, "    %s: %s,\n", pyStr("home_page_in_toc"), pyBool(cfg.ThemeOptions.HomePageInTOC))
	fmt.Fprintf(&b, "    %s: %d,\n", pyStr("show_navbar_depth"), cfg.ThemeOptions.ShowNavbarDepth)
	if cfg.ThemeOptions.RepositoryURL != "" {
		fmt.Fprintf(&b, "    %s: %s,\n", pyStr("repository_url"), pyStr(cfg.ThemeOptions.RepositoryURL))
	}
	fmt.Fprintf(&b, "    %s: %s,\n", pyStr("use_repository_button"), pyBool(cfg.ThemeOptions.UseRepositoryButton))
	b.WriteString("}\n\n")

	writeList(&b, "html_css_files", cfg.HTMLCSSFiles)

	// Cache busting for static files.
	b.WriteString("html_context = {\n")
	fmt.Fprintf(&b, "    %s: %d,\n", pyStr("build_time"), buildTime.Unix())
	if len(fingerprints) > 0 {
		keys := make([]string, 0, len(fingerprints))
		for k := range fingerprints {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(&b, "    %s: {\n", pyStr("asset_fingerprints"))
		for _, k := range keys {
			fmt.Fprintf(&b, "        %s: %s,\n", pyStr(k), pyStr(fingerprints[k]))
		}
		b.WriteString("    },\n")
	}
	b.WriteString("}\n")

	if len(cfg.Intersphinx) > 0 {
		b.WriteString("\nintersphinx_mapping = {\n")
		for _, target := range cfg.Intersphinx {
			inv := "None"
			if target.Inventory != "" {
				inv = pyStr(target.Inventory)
			}
			fmt.Fprintf(&b, "    %s: (%s, %s),\n", pyStr(target.Name), pyStr(target.URL), inv)
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func writeList(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(name + " = [\n")
	for _, v := range values {
		b.WriteString("    " + pyStr(v) + ",\n")
	}
	b.WriteString("]\n\n")
}

// pyStr renders a double-quoted string literal valid in Python.
// strconv.Quote escapes are a subset Python accepts.
func pyStr(s string) string {
	return strconv.Quote(s)
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
