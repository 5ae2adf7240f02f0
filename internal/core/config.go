package core

import (
	"errors"
	"fmt"
)

// slot assigns a raw configuration value into its place in the model.
type slot func(d *Distribution, value any) error

// patchFields is the fixed allow-list of ad-hoc attributes the metadata
// object accepts without modeling them. They resolve to the Attrs
// fallback.
var patchFields = map[string]bool{
	"license_file": true,
}

// IsPatchField reports whether field belongs to the fixed allow-list of
// ad-hoc metadata attributes.
func IsPatchField(field string) bool { return patchFields[field] }

// configSlots is the static table replacing the original's
// setter-or-attribute dispatch by computed name. Every known metadata
// field, distribution field, and tool option has exactly one slot.
var configSlots = map[string]slot{
	"name":    stringSlot(func(d *Distribution) *string { return &d.Metadata.Name }),
	"version": stringSlot(func(d *Distribution) *string { return &d.Metadata.Version }),
	"description": stringSlot(func(d *Distribution) *string {
		return &d.Metadata.Description
	}),
	"long_description": stringSlot(func(d *Distribution) *string {
		return &d.Metadata.LongDescription
	}),
	"long_description_content_type": stringSlot(func(d *Distribution) *string {
		return &d.Metadata.LongDescriptionContentType
	}),
	"keywords":    listSlot(func(d *Distribution) *[]string { return &d.Metadata.Keywords }),
	"classifiers": listSlot(func(d *Distribution) *[]string { return &d.Metadata.Classifiers }),
	"license":     stringSlot(func(d *Distribution) *string { return &d.Metadata.License }),
	"license_files": listSlot(func(d *Distribution) *[]string {
		return &d.Metadata.LicenseFiles
	}),
	"author":       stringSlot(func(d *Distribution) *string { return &d.Metadata.Author }),
	"author_email": stringSlot(func(d *Distribution) *string { return &d.Metadata.AuthorEmail }),
	"maintainer":   stringSlot(func(d *Distribution) *string { return &d.Metadata.Maintainer }),
	"maintainer_email": stringSlot(func(d *Distribution) *string {
		return &d.Metadata.MaintainerEmail
	}),
	"url":          stringSlot(func(d *Distribution) *string { return &d.Metadata.URL }),
	"download_url": stringSlot(func(d *Distribution) *string { return &d.Metadata.DownloadURL }),
	"project_urls": func(d *Distribution, v any) error {
		m, err := asStringMap(v)
		if err != nil {
			return ConfigError("project_urls", err.Error())
		}
		d.Metadata.ProjectURLs = m
		return nil
	},
	"platforms": listSlot(func(d *Distribution) *[]string { return &d.Metadata.Platforms }),
	"provides":  listSlot(func(d *Distribution) *[]string { return &d.Metadata.Provides }),
	"obsoletes": listSlot(func(d *Distribution) *[]string { return &d.Metadata.Obsoletes }),
	"requires_dist": listSlot(func(d *Distribution) *[]string {
		return &d.Metadata.RequiresDist
	}),
	"provides_extras": listSlot(func(d *Distribution) *[]string {
		return &d.Metadata.ProvidesExtras
	}),
	"dynamic": listSlot(func(d *Distribution) *[]string { return &d.Metadata.Dynamic }),
	"python_requires": func(d *Distribution, v any) error {
		switch val := v.(type) {
		case SpecifierSet:
			d.Metadata.RequiresPython = val
			return nil
		case string:
			spec, err := NewSpecifierSet(val)
			if err != nil {
				return ConfigErrorWrap("python_requires", "invalid version specifier", err)
			}
			d.Metadata.RequiresPython = spec
			return nil
		default:
			return ConfigError("python_requires", fmt.Sprintf("expected string, got %T", v))
		}
	},

	"install_requires": listSlot(func(d *Distribution) *[]string { return &d.InstallRequires }),
	"extras_require": func(d *Distribution, v any) error {
		m, err := asStringListMap(v)
		if err != nil {
			return ConfigError("extras_require", err.Error())
		}
		d.ExtrasRequire = m
		return nil
	},
	"entry_points": func(d *Distribution, v any) error {
		m, err := asStringListMap(v)
		if err != nil {
			return ConfigError("entry_points", err.Error())
		}
		d.EntryPoints = m
		return nil
	},

	"zip_safe": boolSlot(func(d *Distribution) **bool { return &d.Options.ZipSafe }),
	"include_package_data": boolSlot(func(d *Distribution) **bool {
		return &d.Options.IncludePackageData
	}),
	"packages":   listSlot(func(d *Distribution) *[]string { return &d.Options.Packages }),
	"py_modules": listSlot(func(d *Distribution) *[]string { return &d.Options.PyModules }),
	"scripts":    listSlot(func(d *Distribution) *[]string { return &d.Options.Scripts }),
	"eager_resources": listSlot(func(d *Distribution) *[]string {
		return &d.Options.EagerResources
	}),
	"dependency_links": listSlot(func(d *Distribution) *[]string {
		return &d.Options.DependencyLinks
	}),
	"namespace_packages": listSlot(func(d *Distribution) *[]string {
		return &d.Options.NamespacePackages
	}),
	"package_dir": func(d *Distribution, v any) error {
		m, err := asStringMap(v)
		if err != nil {
			return ConfigError("package_dir", err.Error())
		}
		d.Options.PackageDir = m
		return nil
	},
	"package_data": func(d *Distribution, v any) error {
		m, err := asStringListMap(v)
		if err != nil {
			return ConfigError("package_data", err.Error())
		}
		d.Options.PackageData = m
		return nil
	},
	"exclude_package_data": func(d *Distribution, v any) error {
		m, err := asStringListMap(v)
		if err != nil {
			return ConfigError("exclude_package_data", err.Error())
		}
		d.Options.ExcludePackageData = m
		return nil
	},
	"data_files": func(d *Distribution, v any) error {
		m, err := asStringListMap(v)
		if err != nil {
			return ConfigError("data_files", err.Error())
		}
		d.Options.DataFiles = m
		return nil
	},
	"cmdclass": func(d *Distribution, v any) error {
		m, err := asStringMap(v)
		if err != nil {
			return ConfigError("cmdclass", err.Error())
		}
		d.Options.CmdClass = m
		return nil
	},
}

// SetConfig assigns a value into the model slot named by field. Field is
// expected in normalized (JSON-compatible) form. Unknown fields,
// including the patch allow-list, land in Attrs; last writer wins.
func SetConfig(d *Distribution, field string, value any) error {
	if fn, ok := configSlots[field]; ok {
		if err := fn(d, value); err != nil {
			var ce *ConfigurationError
			if errors.As(err, &ce) && ce.Field == "" {
				ce.Field = field
			}
			return err
		}
		return nil
	}
	// Unrecognized or patch-only attribute: record verbatim.
	d.Attrs[field] = value
	return nil
}

func stringSlot(target func(*Distribution) *string) slot {
	return func(d *Distribution, v any) error {
		s, ok := v.(string)
		if !ok {
			return ConfigError("", fmt.Sprintf("expected string, got %T", v))
		}
		*target(d) = s
		return nil
	}
}

func boolSlot(target func(*Distribution) **bool) slot {
	return func(d *Distribution, v any) error {
		b, ok := v.(bool)
		if !ok {
			return ConfigError("", fmt.Sprintf("expected bool, got %T", v))
		}
		*target(d) = &b
		return nil
	}
}

func listSlot(target func(*Distribution) *[]string) slot {
	return func(d *Distribution, v any) error {
		list, err := AsStringList(v)
		if err != nil {
			return ConfigError("", err.Error())
		}
		*target(d) = list
		return nil
	}
}

// AsStringList coerces a raw configuration value into a string list. A
// bare string becomes a single-element list; the pass is forgiving with
// inputs but strict with outputs.
func AsStringList(v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return val, nil
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", v)
	}
}

func asStringMap(v any) (map[string]string, error) {
	switch val := v.(type) {
	case map[string]string:
		return val, nil
	case map[string]any:
		return stringMapFromAny(val)
	case *Table:
		return stringMapFromAny(val.Map())
	default:
		return nil, fmt.Errorf("expected table of strings, got %T", v)
	}
}

func stringMapFromAny(m map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, item := range m {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string value for %q, got %T", k, item)
		}
		out[k] = s
	}
	return out, nil
}

func asStringListMap(v any) (map[string][]string, error) {
	switch val := v.(type) {
	case map[string][]string:
		return val, nil
	case map[string]any:
		return stringListMapFromAny(val)
	case *Table:
		return stringListMapFromAny(val.Map())
	default:
		return nil, fmt.Errorf("expected table of string lists, got %T", v)
	}
}

func stringListMapFromAny(m map[string]any) (map[string][]string, error) {
	out := make(map[string][]string, len(m))
	for k, item := range m {
		list, err := AsStringList(item)
		if err != nil {
			return nil, fmt.Errorf("%q: %v", k, err)
		}
		out[k] = list
	}
	return out, nil
}
