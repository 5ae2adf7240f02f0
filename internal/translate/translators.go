package translate

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/pyproject/internal/core"
	"github.com/git-pkgs/pyproject/internal/expand"
)

// defaultReadmeContentType applies when the readme is given as a plain
// string.
const defaultReadmeContentType = "text/x-rst"

// longDescription translates the readme field. A plain string is inline
// text with the default content type; a table prefers an explicit
// "text" key over reading from "file", and must carry "content-type".
func longDescription(dist *core.Distribution, value any, rootDir string) error {
	var text, ctype string

	switch val := value.(type) {
	case string:
		text = val
		ctype = defaultReadmeContentType
	case *core.Table:
		if raw, ok := val.Get("text"); ok {
			s, ok := raw.(string)
			if !ok {
				return core.ConfigError("readme.text", fmt.Sprintf("expected string, got %T", raw))
			}
			text = s
		}
		if text == "" {
			raw, ok := val.Get("file")
			if !ok {
				return core.ConfigError("readme", "requires either `text` or `file`")
			}
			paths, err := core.AsStringList(raw)
			if err != nil {
				return core.ConfigError("readme.file", err.Error())
			}
			text, err = expand.ReadFiles(paths, rootDir)
			if err != nil {
				return core.ConfigErrorWrap("readme.file", "cannot read", err)
			}
		}
		raw, ok := val.Get("content-type")
		if !ok {
			return core.ConfigError("readme", "missing `content-type`")
		}
		s, ok := raw.(string)
		if !ok {
			return core.ConfigError("readme.content-type", fmt.Sprintf("expected string, got %T", raw))
		}
		ctype = s
	default:
		return core.ConfigError("readme", fmt.Sprintf("expected string or table, got %T", value))
	}

	if err := core.SetConfig(dist, "long_description", text); err != nil {
		return err
	}
	return core.SetConfig(dist, "long_description_content_type", ctype)
}

// license translates the license field. The three branches are mutually
// exclusive per call: plain text, a single license file, or an explicit
// text key.
func license(dist *core.Distribution, value any, _ string) error {
	switch val := value.(type) {
	case string:
		return core.SetConfig(dist, "license", val)
	case *core.Table:
		if raw, ok := val.Get("file"); ok {
			file, ok := raw.(string)
			if !ok {
				return core.ConfigError("license.file", fmt.Sprintf("expected string, got %T", raw))
			}
			return core.SetConfig(dist, "license_files", []string{file})
		}
		if raw, ok := val.Get("text"); ok {
			text, ok := raw.(string)
			if !ok {
				return core.ConfigError("license.text", fmt.Sprintf("expected string, got %T", raw))
			}
			return core.SetConfig(dist, "license", text)
		}
		return core.ConfigError("license", "requires either `file` or `text`")
	default:
		return core.ConfigError("license", fmt.Sprintf("expected string or table, got %T", value))
	}
}

// people builds the translator for a person list (authors or
// maintainers). A person with both name and email contributes a single
// "display name <address>" token to the email field only; a person
// missing one of the two contributes the other verbatim to the matching
// field.
func people(kind string) translator {
	return func(dist *core.Distribution, value any, _ string) error {
		entries, ok := value.([]any)
		if !ok {
			return core.ConfigError(kind+"s", fmt.Sprintf("expected list of tables, got %T", value))
		}

		var names, emails []string
		for _, entry := range entries {
			person, ok := entry.(*core.Table)
			if !ok {
				return core.ConfigError(kind+"s", fmt.Sprintf("expected table entry, got %T", entry))
			}
			name, hasName := stringKey(person, "name")
			email, hasEmail := stringKey(person, "email")
			switch {
			case !hasName && !hasEmail:
				return core.ConfigError(kind+"s", "entry requires at least one of `name` or `email`")
			case !hasName:
				emails = append(emails, email)
			case !hasEmail:
				names = append(names, name)
			default:
				emails = append(emails, formatAddress(name, email))
			}
		}

		if len(names) > 0 {
			if err := core.SetConfig(dist, kind, strings.Join(names, ", ")); err != nil {
				return err
			}
		}
		if len(emails) > 0 {
			return core.SetConfig(dist, kind+"_email", strings.Join(emails, ", "))
		}
		return nil
	}
}

// projectURLs translates the urls table. The homepage and download-URL
// aliases are matched case- and separator-insensitively; every entry,
// aliased or not, is preserved verbatim in the raw URL mapping.
func projectURLs(dist *core.Distribution, value any, _ string) error {
	table, ok := value.(*core.Table)
	if !ok {
		return core.ConfigError("urls", fmt.Sprintf("expected table, got %T", value))
	}

	special := map[string]string{
		"downloadurl": "download_url",
		"homepage":    "url",
	}

	raw := make(map[string]string, table.Len())
	for _, key := range table.Keys() {
		url, ok := stringKey(table, key)
		if !ok {
			return core.ConfigError("urls."+key, "expected string value")
		}
		norm := strings.ReplaceAll(core.NormalizeKey(key), "_", "")
		if attr, isSpecial := special[norm]; isSpecial {
			if err := core.SetConfig(dist, attr, url); err != nil {
				return err
			}
		}
		raw[key] = url
	}
	return core.SetConfig(dist, "project_urls", raw)
}

// pythonRequires parses the requires-python constraint into a specifier
// set.
func pythonRequires(dist *core.Distribution, value any, _ string) error {
	s, ok := value.(string)
	if !ok {
		return core.ConfigError("requires_python", fmt.Sprintf("expected string, got %T", value))
	}
	spec, err := core.NewSpecifierSet(s)
	if err != nil {
		return core.ConfigErrorWrap("requires_python", "invalid version specifier", err)
	}
	return core.SetConfig(dist, "python_requires", spec)
}

// formatAddress renders a "display name <address>" token, quoting the
// display name only when it contains characters outside the atom set.
func formatAddress(name, email string) string {
	if addressNeedsQuoting(name) {
		escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name)
		return `"` + escaped + `" <` + email + ">"
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

const atomSpecials = "()<>[]:;@\\,.\""

func addressNeedsQuoting(name string) bool {
	return strings.ContainsAny(name, atomSpecials)
}

func stringKey(t *core.Table, key string) (string, bool) {
	raw, ok := t.Get(key)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}
